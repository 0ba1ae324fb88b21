package commands

import (
	"context"
	"fmt"
	"os"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type studentPhotoCmd struct{}

func (studentPhotoCmd) Name() string { return "student-photo" }
func (studentPhotoCmd) Description() string {
	return "Attach a photo to a student record"
}
func (studentPhotoCmd) Usage() string { return "student-photo <barcode> <image-file>" }

func (studentPhotoCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read photo: %w", err)
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := t.Registry.SetStudentPhoto(args[0], data); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Photo set for %s (%d bytes)\n", args[0], len(data))
	return nil
}

func init() { RegisterCmd(studentPhotoCmd{}) }
