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

type exportEquipmentCmd struct{}

func (exportEquipmentCmd) Name() string { return "export-equipment" }
func (exportEquipmentCmd) Description() string {
	return "Write the inventory as label-printer CSV"
}
func (exportEquipmentCmd) Usage() string { return "export-equipment [-o <file>]" }

func (exportEquipmentCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export-equipment", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "", "output file (default: dated name in the current directory)")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()

	name := *out
	if name == "" {
		name = export.EquipmentCSVFileName(t.Ledger.Now())
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()
	if err := export.EquipmentCSV(f, t.Registry.Equipment()); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Wrote %s\n", name)
	return nil
}

func init() { RegisterCmd(exportEquipmentCmd{}) }
