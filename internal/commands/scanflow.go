package commands

import (
	"fmt"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
	"GearTrack/internal/model"
	"GearTrack/internal/scan"
	"GearTrack/internal/tracker"
)

// withScanner opens the tracker, restores the saved scan session into its
// interpreter, runs fn, and persists whatever session the interpreter ends
// in. Scan-flow commands share this so one physical flow at the desk spans
// several CLI invocations.
func withScanner(cfg *config.Config, fn func(t *tracker.Tracker) error) error {
	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		return err
	}
	defer done()

	ss := bootstrap.SessionStore(cfg)
	sess, err := ss.Load()
	if err != nil {
		return err
	}
	t.Scanner.Restore(sess)

	runErr := fn(t)

	if err := ss.Save(t.Scanner.Session()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return runErr
}

func printEvent(e scan.Event) {
	fmt.Fprintln(Out, e.Message)
	printTransactions(e.Transactions)
}

func printTransactions(txs []model.Transaction) {
	for _, tx := range txs {
		fmt.Fprintf(Out, "  - %s  (checked out %s)\n",
			tx.EquipmentLabel(), tx.CheckoutTime.Format("2006-01-02 15:04"))
	}
}
