package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type equipmentEditCmd struct{}

func (equipmentEditCmd) Name() string { return "equipment-edit" }
func (equipmentEditCmd) Description() string {
	return "Edit an item; a barcode change renames its whole history"
}
func (equipmentEditCmd) Usage() string {
	return "equipment-edit <barcode> [-type <type>] [-barcode <new>] [-desc <text>]"
}

func (equipmentEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	barcode := args[0]
	fs := flag.NewFlagSet("equipment-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	equipType := fs.String("type", "", "new equipment type")
	newBarcode := fs.String("barcode", "", "new barcode")
	desc := fs.String("desc", "", "new description")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	var typePtr, barcodePtr, descPtr *string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			typePtr = equipType
		case "barcode":
			barcodePtr = newBarcode
		case "desc":
			descPtr = desc
		}
	})
	if typePtr == nil && barcodePtr == nil && descPtr == nil {
		return ErrUsage
	}

	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	e, err := t.EditEquipment(barcode, typePtr, barcodePtr, descPtr)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated: %s (%s)\n", e.Label(), e.Barcode)
	return nil
}

func init() { RegisterCmd(equipmentEditCmd{}) }
