package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/config"
	"GearTrack/internal/tracker"
)

type checkinCmd struct{}

func (checkinCmd) Name() string { return "checkin" }
func (checkinCmd) Description() string {
	return "Return one item from the selected student's open items"
}
func (checkinCmd) Usage() string { return "checkin <equipment-barcode>" }

func (checkinCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withScanner(cfg, func(t *tracker.Tracker) error {
		tx, remaining, err := t.Scanner.CheckinOne(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Checked in: %s\n", tx.EquipmentLabel())
		if remaining > 0 {
			fmt.Fprintf(Out, "%d item(s) still out\n", remaining)
		} else {
			fmt.Fprintf(Out, "All equipment returned by %s\n", tx.StudentName)
		}
		return nil
	})
}

func init() { RegisterCmd(checkinCmd{}) }
