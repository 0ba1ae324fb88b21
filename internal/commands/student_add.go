package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type studentAddCmd struct{}

func (studentAddCmd) Name() string { return "student-add" }
func (studentAddCmd) Description() string {
	return "Add a student to the roster"
}
func (studentAddCmd) Usage() string { return "student-add <name> <barcode> [<email>]" }

func (studentAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	email := ""
	if len(args) == 3 {
		email = args[2]
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	s, err := t.Registry.AddStudent(args[0], args[1], email)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Added:")
	fmt.Fprintf(Out, "  name:    %s\n", s.Name)
	fmt.Fprintf(Out, "  barcode: %s\n", s.Barcode)
	if s.Email != "" {
		fmt.Fprintf(Out, "  email:   %s\n", s.Email)
	}
	return nil
}

func init() { RegisterCmd(studentAddCmd{}) }
