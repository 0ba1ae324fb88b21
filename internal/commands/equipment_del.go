package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type equipmentDelCmd struct{}

func (equipmentDelCmd) Name() string { return "equipment-del" }
func (equipmentDelCmd) Description() string {
	return "Remove an item from the inventory; its history is kept"
}
func (equipmentDelCmd) Usage() string { return "equipment-del <barcode>" }

func (equipmentDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := t.DeleteEquipment(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted equipment %s\n", args[0])
	return nil
}

func init() { RegisterCmd(equipmentDelCmd{}) }
