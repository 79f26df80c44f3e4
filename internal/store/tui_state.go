package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const tuiStateFileName = "tui_state.json"

// TUIState stores small, user-facing UI state for restoring the last screen on relaunch.
//
// It is intentionally "best effort": callers should tolerate missing/invalid data.
type TUIState struct {
	Version int `json:"version"`

	Category string `json:"category,omitempty"`

	// Sort is one of: newest|price-low|price-high|rating
	Sort string `json:"sort,omitempty"`

	Query string `json:"query,omitempty"`
}

// StateDir scopes the TUI state file; the zero value resolves to ConfigDir().
type StateDir string

func (d StateDir) path() (string, error) {
	dir := strings.TrimSpace(string(d))
	if dir == "" {
		cd, err := ConfigDir()
		if err != nil {
			return "", err
		}
		dir = cd
	}
	return filepath.Join(dir, tuiStateFileName), nil
}

func (d StateDir) LoadTUIState() (*TUIState, error) {
	path, err := d.path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &TUIState{Version: 1}, nil
		}
		return nil, err
	}
	var st TUIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &TUIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func (d StateDir) SaveTUIState(st *TUIState) error {
	if st == nil {
		return nil
	}
	path, err := d.path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, tuiStateFileName+".*.tmp", path, b, 0o644)
}
