package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	want := State{Cursor: 3, ShowNum: true, ShowNumRel: false}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok := Load(path)
	if !ok {
		t.Fatal("Load: ok = false")
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadMissingSidecarIsNotOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := Load(path); ok {
		t.Fatal("Load: ok = true, want false")
	}
}

func TestLoadStaleSidecarIsNotOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, State{Cursor: 1}); err != nil {
		t.Fatal(err)
	}

	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	if _, ok := Load(path); ok {
		t.Fatal("Load: ok = true for a sidecar older than its target file")
	}
}

func TestSaveNoFilenameIsNoop(t *testing.T) {
	if err := Save("", State{Cursor: 1}); err != nil {
		t.Fatalf("Save(\"\"): %v", err)
	}
}
