// Package state persists the single active-issue pointer.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const fileName = "active_issue.json"

// ErrNoActiveIssue reports that no active issue has been set. Callers decide
// whether that is an informational condition or a hard failure.
var ErrNoActiveIssue = errors.New("no active issue selected")

// activeIssue is the on-disk record.
type activeIssue struct {
	ActiveIssueKey string `json:"active_issue_key"`
}

// Store reads and writes the active-issue file inside a fixed directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save persists key as the sole active issue, overwriting any prior value.
// The write is atomic: a failed write leaves the previous state intact.
func (s *Store) Save(key string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(activeIssue{ActiveIssueKey: key}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling active issue: %w", err)
	}

	path := filepath.Join(s.dir, fileName)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing active issue temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming active issue temp file: %w", err)
	}
	return nil
}

// Load returns the persisted active issue key, or ErrNoActiveIssue when the
// store has never been written. Corrupt JSON is backed up and reported as a
// hard error.
func (s *Store) Load() (string, error) {
	path := filepath.Join(s.dir, fileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", ErrNoActiveIssue
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	var rec activeIssue
	if err := json.Unmarshal(data, &rec); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return "", fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if rec.ActiveIssueKey == "" {
		return "", ErrNoActiveIssue
	}
	return rec.ActiveIssueKey, nil
}
