// Package session persists and restores best-effort per-file editing
// state across invocations: the last cursor offset and gutter toggles,
// keyed by the file's own path (see SPEC_FULL.md §3.2). It has no
// equivalent in the original wee.c, which takes a filename and nothing
// else — this is a genuine addition, scoped to stay invisible: a
// missing, stale, or malformed sidecar is never an error the caller
// needs to handle specially, only something to log and move past.
package session

import (
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// State is the subset of editor state worth remembering between runs.
type State struct {
	Cursor     int
	ShowNum    bool
	ShowNumRel bool
}

// sidecarPath returns the sidecar file's path for the edited file at path.
func sidecarPath(path string) string {
	return path + ".wee-session.json"
}

// Save writes st to path's sidecar. Failures are the caller's to log at
// Warn; they never block or fail a :w/:wq.
func Save(path string, st State) error {
	if path == "" {
		return nil
	}
	doc := "{}"
	doc, err := sjson.Set(doc, "cursor", st.Cursor)
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, "show_num", st.ShowNum)
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, "show_num_rel", st.ShowNumRel)
	if err != nil {
		return err
	}
	return os.WriteFile(sidecarPath(path), []byte(doc), 0o644)
}

// Load reads path's sidecar, returning ok=false if it is absent,
// unparsable, or older than the file it describes — a stale sidecar
// (the file was edited by something else since) is worse than none.
func Load(path string) (st State, ok bool) {
	if path == "" {
		return State{}, false
	}
	sidecar := sidecarPath(path)

	target, err := os.Stat(path)
	if err != nil {
		return State{}, false
	}
	side, err := os.Stat(sidecar)
	if err != nil {
		return State{}, false
	}
	if side.ModTime().Before(target.ModTime()) {
		return State{}, false
	}

	data, err := os.ReadFile(sidecar)
	if err != nil {
		return State{}, false
	}
	if !gjson.ValidBytes(data) {
		return State{}, false
	}

	parsed := gjson.ParseBytes(data)
	st.Cursor = int(parsed.Get("cursor").Int())
	st.ShowNum = parsed.Get("show_num").Bool()
	st.ShowNumRel = parsed.Get("show_num_rel").Bool()
	return st, true
}
