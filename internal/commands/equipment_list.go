package commands

import (
	"context"
	"fmt"
	"strings"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
	"GearTrack/internal/model"
)

type equipmentCmd struct{}

func (equipmentCmd) Name() string        { return "equipment" }
func (equipmentCmd) Description() string { return "List the inventory" }
func (equipmentCmd) Usage() string       { return "equipment [search]" }

func (equipmentCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	search := strings.ToLower(strings.Join(args, " "))
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()
	var list []model.Equipment
	for _, e := range t.Registry.Equipment() {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Type), search) &&
			!strings.Contains(strings.ToLower(e.Barcode), search) &&
			!strings.Contains(strings.ToLower(e.Description), search) {
			continue
		}
		list = append(list, e)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No equipment")
		return nil
	}
	for _, e := range list {
		status := "available"
		if t.Ledger.IsCheckedOut(e.Barcode) {
			status = "out"
		}
		fmt.Fprintf(Out, "- %s  %s  [%s]\n", e.Barcode, e.Label(), status)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(equipmentCmd{}) }
