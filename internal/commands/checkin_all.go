package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/config"
	"GearTrack/internal/tracker"
)

type checkinAllCmd struct{}

func (checkinAllCmd) Name() string { return "checkin-all" }
func (checkinAllCmd) Description() string {
	return "Return every open item for the selected student"
}
func (checkinAllCmd) Usage() string { return "checkin-all" }

func (checkinAllCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withScanner(cfg, func(t *tracker.Tracker) error {
		count, err := t.Scanner.CheckinAll()
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "%d item(s) checked in\n", count)
		return nil
	})
}

func init() { RegisterCmd(checkinAllCmd{}) }
