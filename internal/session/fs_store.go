// Package session persists the scan interpreter session between CLI
// invocations as a small JSON file, so `gtcli scan`, `gtcli confirm`, and
// friends behave like one continuous flow at the checkout desk.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"GearTrack/internal/scan"
)

// FSStore reads and writes the session file. An empty Path falls back to
// the default location under the user config dir.
type FSStore struct {
	Path string
}

// DefaultPath is the session file location when none is configured.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "GearTrack", "scan_session.json"), nil
}

func (s FSStore) path() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	return DefaultPath()
}

// Save writes the session, creating the directory if needed.
func (s FSStore) Save(sess scan.Session) error {
	p, err := s.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return os.WriteFile(p, b, 0o600)
}

// Load reads the saved session. A missing file is not an error: the
// session simply starts Idle.
func (s FSStore) Load() (scan.Session, error) {
	p, err := s.path()
	if err != nil {
		return scan.Session{}, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return scan.Session{}, nil
	}
	if err != nil {
		return scan.Session{}, err
	}
	var sess scan.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		// A corrupt session file is discarded rather than wedging the CLI.
		return scan.Session{}, nil
	}
	return sess, nil
}

// Clear removes the session file.
func (s FSStore) Clear() error {
	p, err := s.path()
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
