package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/config"
	"GearTrack/internal/tracker"
)

type statusCmd struct{}

func (statusCmd) Name() string { return "status" }
func (statusCmd) Description() string {
	return "Show the scan session state and summary counters"
}
func (statusCmd) Usage() string { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withScanner(cfg, func(t *tracker.Tracker) error {
		sess := t.Scanner.Session()
		fmt.Fprintf(Out, "Session state: %s\n", sess.State)
		if sess.StudentBarcode != "" {
			if s, ok := t.Registry.FindStudent(sess.StudentBarcode); ok {
				fmt.Fprintf(Out, "  student:   %s (%s)\n", s.Name, s.Barcode)
			} else {
				fmt.Fprintf(Out, "  student:   %s\n", sess.StudentBarcode)
			}
		}
		if sess.EquipmentBarcode != "" {
			if e, ok := t.Registry.FindEquipment(sess.EquipmentBarcode); ok {
				fmt.Fprintf(Out, "  equipment: %s\n", e.Label())
			} else {
				fmt.Fprintf(Out, "  equipment: %s\n", sess.EquipmentBarcode)
			}
		}
		if sess.ExpectedReturn != nil {
			fmt.Fprintf(Out, "  expected return: %s\n", sess.ExpectedReturn.Format("2006-01-02 15:04"))
		}

		st := t.Stats()
		fmt.Fprintf(Out, "Students: %d  Equipment: %d  Out: %d  Overdue: %d\n",
			st.TotalStudents, st.TotalEquipment, st.CurrentlyOut, st.Overdue)
		return nil
	})
}

func init() { RegisterCmd(statusCmd{}) }
