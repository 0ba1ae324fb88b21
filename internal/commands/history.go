package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
	"GearTrack/internal/report"
)

type historyCmd struct{}

func (historyCmd) Name() string { return "history" }
func (historyCmd) Description() string {
	return "Show the transaction history, newest first"
}
func (historyCmd) Usage() string {
	return "history [-status all|out|in|overdue] [search terms]"
}

func (historyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	status := fs.String("status", report.FilterAll, "status filter")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	switch *status {
	case report.FilterAll, report.FilterOut, report.FilterIn, report.FilterOverdue:
	default:
		return ErrUsage
	}
	search := strings.Join(fs.Args(), " ")

	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	rows := t.History(*status, search)
	if len(rows) == 0 {
		fmt.Fprintln(Out, "No transactions")
		return nil
	}
	for _, row := range rows {
		tx := row.Transaction
		line := fmt.Sprintf("- %s  %s -> %s  out %s",
			tx.ID, tx.EquipmentLabel(), tx.StudentName, tx.CheckoutTime.Format("2006-01-02 15:04"))
		if tx.CheckinTime != nil {
			line += "  in " + tx.CheckinTime.Format("2006-01-02 15:04")
		} else if row.Overdue {
			line += "  OVERDUE"
		}
		fmt.Fprintln(Out, line)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(rows))
	return nil
}

func init() { RegisterCmd(historyCmd{}) }
