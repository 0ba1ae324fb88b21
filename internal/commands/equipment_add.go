package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type equipmentAddCmd struct{}

func (equipmentAddCmd) Name() string { return "equipment-add" }
func (equipmentAddCmd) Description() string {
	return "Add an equipment item to the inventory"
}
func (equipmentAddCmd) Usage() string {
	return "equipment-add <type> <barcode> [<description>]"
}

func (equipmentAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	description := ""
	if len(args) == 3 {
		description = args[2]
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	e, err := t.Registry.AddEquipment(args[0], args[1], description)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Added:")
	fmt.Fprintf(Out, "  type:    %s\n", e.Type)
	fmt.Fprintf(Out, "  barcode: %s\n", e.Barcode)
	if e.Description != "" {
		fmt.Fprintf(Out, "  desc:    %s\n", e.Description)
	}
	return nil
}

func init() { RegisterCmd(equipmentAddCmd{}) }
