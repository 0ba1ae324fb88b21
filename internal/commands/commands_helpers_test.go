package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"GearTrack/internal/config"
)

// testConfig points the database and session file into a temp dir so each
// test runs against fresh state.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DBPath:      filepath.Join(dir, "geartrack.db"),
		SessionFile: filepath.Join(dir, "scan_session.json"),
		PhotoMaxKB:  500,
	}
}

// captureOut redirects the shared CLI writer into a buffer for the test.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func mustRun(t *testing.T, c Command, cfg *config.Config, args ...string) {
	t.Helper()
	if err := c.Run(context.Background(), cfg, args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
}
