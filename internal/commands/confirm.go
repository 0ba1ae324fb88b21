package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"GearTrack/internal/config"
	"GearTrack/internal/scan"
	"GearTrack/internal/tracker"
)

type confirmCmd struct{}

func (confirmCmd) Name() string { return "confirm" }
func (confirmCmd) Description() string {
	return "Confirm the pending checkout or check-in"
}
func (confirmCmd) Usage() string {
	return "confirm [-notes <text>] [-return <RFC3339|YYYY-MM-DDTHH:MM>]"
}

// parseReturnTime accepts RFC3339 or a local timestamp without zone, the
// form a date-time picker produces.
func parseReturnTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, time.Local)
}

func (confirmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("confirm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	notes := fs.String("notes", "", "notes to record on the transaction")
	returnAt := fs.String("return", "", "expected return time, RFC3339")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	var expected *time.Time
	if *returnAt != "" {
		ts, err := parseReturnTime(*returnAt)
		if err != nil {
			return fmt.Errorf("bad -return value %q: %w", *returnAt, err)
		}
		expected = &ts
	}

	return withScanner(cfg, func(t *tracker.Tracker) error {
		switch t.Scanner.State() {
		case scan.StateAwaitingCheckoutConfirm:
			tx, err := t.Scanner.ConfirmCheckout(*notes, expected)
			if err != nil {
				return err
			}
			fmt.Fprintf(Out, "Checked out: %s -> %s\n", tx.EquipmentLabel(), tx.StudentName)
			if tx.ExpectedReturnTime != nil {
				fmt.Fprintf(Out, "  expected back: %s\n", tx.ExpectedReturnTime.Format("2006-01-02 15:04"))
			}
			return nil
		case scan.StateAwaitingCheckinConfirm:
			tx, err := t.Scanner.ConfirmCheckin(*notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(Out, "Checked in: %s from %s\n", tx.EquipmentLabel(), tx.StudentName)
			return nil
		default:
			return fmt.Errorf("nothing to confirm (state %s)", t.Scanner.State())
		}
	})
}

func init() { RegisterCmd(confirmCmd{}) }
