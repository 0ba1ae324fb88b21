package commands

import (
	"context"

	"GearTrack/internal/config"
	"GearTrack/internal/tracker"
)

type cancelCmd struct{}

func (cancelCmd) Name() string        { return "cancel" }
func (cancelCmd) Description() string { return "Discard the current scan flow" }
func (cancelCmd) Usage() string       { return "cancel" }

func (cancelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withScanner(cfg, func(t *tracker.Tracker) error {
		printEvent(t.Scanner.Cancel())
		return nil
	})
}

func init() { RegisterCmd(cancelCmd{}) }
