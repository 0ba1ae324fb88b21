package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type studentEditCmd struct{}

func (studentEditCmd) Name() string { return "student-edit" }
func (studentEditCmd) Description() string {
	return "Edit a student; a barcode change renames their whole history"
}
func (studentEditCmd) Usage() string {
	return "student-edit <barcode> [-name <name>] [-barcode <new>] [-email <email>]"
}

func (studentEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	barcode := args[0]
	fs := flag.NewFlagSet("student-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "new display name")
	newBarcode := fs.String("barcode", "", "new barcode")
	email := fs.String("email", "", "new email")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	var namePtr, barcodePtr, emailPtr *string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			namePtr = name
		case "barcode":
			barcodePtr = newBarcode
		case "email":
			emailPtr = email
		}
	})
	if namePtr == nil && barcodePtr == nil && emailPtr == nil {
		return ErrUsage
	}

	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	s, err := t.EditStudent(barcode, namePtr, barcodePtr, emailPtr)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated: %s (%s)\n", s.Name, s.Barcode)
	return nil
}

func init() { RegisterCmd(studentEditCmd{}) }
