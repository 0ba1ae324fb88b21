package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type reportsCmd struct{}

func (reportsCmd) Name() string { return "reports" }
func (reportsCmd) Description() string {
	return "Show summary counters and the currently-out table"
}
func (reportsCmd) Usage() string { return "reports" }

func (reportsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()

	st := t.Stats()
	fmt.Fprintf(Out, "Students: %d\n", st.TotalStudents)
	fmt.Fprintf(Out, "Equipment: %d\n", st.TotalEquipment)
	fmt.Fprintf(Out, "Currently out: %d\n", st.CurrentlyOut)
	fmt.Fprintf(Out, "Overdue: %d\n", st.Overdue)

	rows := t.CheckedOut()
	if len(rows) == 0 {
		fmt.Fprintln(Out, "Nothing checked out")
		return nil
	}
	fmt.Fprintln(Out, "Checked out:")
	for _, r := range rows {
		line := fmt.Sprintf("- %s  %s  for %s", r.EquipmentLabel, r.StudentName, r.Duration)
		if r.Overdue {
			line += "  OVERDUE"
		}
		fmt.Fprintln(Out, line)
	}
	return nil
}

func init() { RegisterCmd(reportsCmd{}) }
