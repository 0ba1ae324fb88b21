package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
	"GearTrack/internal/export"
)

type exportStudentsCmd struct{}

func (exportStudentsCmd) Name() string { return "export-students" }
func (exportStudentsCmd) Description() string {
	return "Write the roster as JSON, ready for student-import"
}
func (exportStudentsCmd) Usage() string { return "export-students [-o <file>]" }

func (exportStudentsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export-students", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "students.json", "output file")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()
	if err := export.StudentsJSON(f, t.Registry.Students()); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Wrote %s\n", *out)
	return nil
}

func init() { RegisterCmd(exportStudentsCmd{}) }
