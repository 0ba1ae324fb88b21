package commands

import (
	"context"

	"GearTrack/internal/config"
	"GearTrack/internal/tracker"
)

type scanCmd struct{}

func (scanCmd) Name() string { return "scan" }
func (scanCmd) Description() string {
	return "Scan a student pass or equipment barcode"
}
func (scanCmd) Usage() string { return "scan <barcode>" }

func (scanCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withScanner(cfg, func(t *tracker.Tracker) error {
		e, err := t.Scanner.Scan(args[0])
		if err != nil {
			return err
		}
		printEvent(e)
		return nil
	})
}

func init() { RegisterCmd(scanCmd{}) }
