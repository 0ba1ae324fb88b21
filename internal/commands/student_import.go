package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
	"GearTrack/internal/model"
)

type studentImportCmd struct{}

func (studentImportCmd) Name() string { return "student-import" }
func (studentImportCmd) Description() string {
	return "Import students from a JSON file, skipping known barcodes"
}
func (studentImportCmd) Usage() string { return "student-import <file.json>" }

func (studentImportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	var students []model.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return fmt.Errorf("parse import file: %w", err)
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	added, skipped, err := t.Registry.ImportStudents(students)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Imported %d student(s), skipped %d existing\n", added, skipped)
	return nil
}

func init() { RegisterCmd(studentImportCmd{}) }
