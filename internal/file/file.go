// Package file loads and atomically saves wee's single text buffer.
package file

import (
	"fmt"
	"io"
	"os"
)

// Load reads path into memory. A missing or unopenable path is reported
// as isNew=true with no error, matching a fresh-buffer open; a file that
// opens but fails to read all the way through is a real error.
func Load(path string) (data []byte, isNew bool, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		return nil, true, nil
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return data, false, nil
}

// Save atomically writes data to path: write to path+".tmp", fsync, then
// rename over path. The rename makes a concurrent reader (or a crash
// mid-write) see either the old or the new contents, never a partial
// write.
func Save(path string, data []byte) error {
	if path == "" {
		return ErrNoFilename
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write failed: %w", err)
	}

	if err := fsyncFile(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("fsync failed: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write failed: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename failed: %w", err)
	}
	return nil
}
