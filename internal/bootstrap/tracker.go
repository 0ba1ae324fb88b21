// Package bootstrap opens the application state for one CLI invocation.
package bootstrap

import (
	"fmt"

	"GearTrack/internal/config"
	"GearTrack/internal/session"
	"GearTrack/internal/store"
	"GearTrack/internal/tracker"
)

// OpenTracker opens the SQLite store at cfg.DBPath and assembles the
// tracker over it, returning (tracker, cleanup, error). cleanup must be
// called after the work is done to close the database connection.
func OpenTracker(cfg *config.Config) (*tracker.Tracker, func() error, error) {
	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	t, err := tracker.Open(st)
	if err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("load state: %w", err)
	}
	if cfg.PhotoMaxKB > 0 {
		t.Registry.SetPhotoMaxBytes(cfg.PhotoMaxKB * 1000)
	}
	cleanup := func() error { return t.Close() }
	return t, cleanup, nil
}

// SessionStore returns the scan session store for this configuration.
func SessionStore(cfg *config.Config) session.FSStore {
	return session.FSStore{Path: cfg.SessionFile}
}
