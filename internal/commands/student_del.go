package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type studentDelCmd struct{}

func (studentDelCmd) Name() string { return "student-del" }
func (studentDelCmd) Description() string {
	return "Remove a student from the roster; their history is kept"
}
func (studentDelCmd) Usage() string { return "student-del <barcode>" }

func (studentDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := t.DeleteStudent(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted student %s\n", args[0])
	return nil
}

func init() { RegisterCmd(studentDelCmd{}) }
