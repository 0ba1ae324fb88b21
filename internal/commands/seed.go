package commands

import (
	"context"
	"fmt"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
)

type seedCmd struct{}

func (seedCmd) Name() string { return "seed" }
func (seedCmd) Description() string {
	return "Load the stock inventory, skipping barcodes that already exist"
}
func (seedCmd) Usage() string { return "seed" }

func (seedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	count, err := t.Registry.SeedDefaultEquipment()
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Seeded %d equipment item(s)\n", count)
	return nil
}

func init() { RegisterCmd(seedCmd{}) }
