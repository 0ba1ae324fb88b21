package commands

import (
	"context"

	"GearTrack/internal/config"
	"GearTrack/internal/tracker"
)

type proceedCmd struct{}

func (proceedCmd) Name() string { return "proceed" }
func (proceedCmd) Description() string {
	return "Keep the selected student and move on to a checkout"
}
func (proceedCmd) Usage() string { return "proceed" }

func (proceedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withScanner(cfg, func(t *tracker.Tracker) error {
		e, err := t.Scanner.ProceedToCheckout()
		if err != nil {
			return err
		}
		printEvent(e)
		return nil
	})
}

func init() { RegisterCmd(proceedCmd{}) }
