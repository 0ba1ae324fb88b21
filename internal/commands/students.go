package commands

import (
	"context"
	"fmt"
	"strings"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
	"GearTrack/internal/model"
)

type studentsCmd struct{}

func (studentsCmd) Name() string        { return "students" }
func (studentsCmd) Description() string { return "List the roster" }
func (studentsCmd) Usage() string       { return "students [search]" }

func (studentsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	search := strings.ToLower(strings.Join(args, " "))
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	var list []model.Student
	for _, s := range t.Registry.Students() {
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Barcode), search) &&
			!strings.Contains(strings.ToLower(s.Email), search) {
			continue
		}
		list = append(list, s)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No students")
		return nil
	}
	for _, s := range list {
		line := fmt.Sprintf("- %s  name=%s", s.Barcode, s.Name)
		if s.Email != "" {
			line += "  email=" + s.Email
		}
		if len(s.Photo) > 0 {
			line += "  photo=yes"
		}
		fmt.Fprintln(Out, line)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(studentsCmd{}) }
