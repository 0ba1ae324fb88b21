// Package tracker wires the store, registry, ledger, and scan interpreter
// into one application object. The CLI and the report server both sit on
// top of it. It owns the two cross-component behaviors: the barcode-rename
// cascade from roster/inventory edits into the transaction log, and the
// refresh signal views subscribe to.
package tracker

import (
	"fmt"

	"GearTrack/internal/ledger"
	"GearTrack/internal/model"
	"GearTrack/internal/registry"
	"GearTrack/internal/report"
	"GearTrack/internal/scan"
	"GearTrack/internal/store"
)

// Tracker is the assembled application state over one Store.
type Tracker struct {
	store     store.Store
	Registry  *registry.Registry
	Ledger    *ledger.Ledger
	Scanner   *scan.Interpreter
	observers []func()
}

// Open loads the three collections from st and assembles the tracker.
func Open(st store.Store) (*Tracker, error) {
	students, err := st.LoadStudents()
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	equipment, err := st.LoadEquipment()
	if err != nil {
		return nil, fmt.Errorf("load equipment: %w", err)
	}
	transactions, err := st.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	reg := registry.New(students, equipment, st.SaveStudents, st.SaveEquipment)
	led := ledger.New(transactions, st.SaveTransactions)
	t := &Tracker{
		store:    st,
		Registry: reg,
		Ledger:   led,
		Scanner:  scan.New(reg, led),
	}
	reg.OnChange(t.notify)
	led.OnChange(t.notify)
	return t, nil
}

// Close releases the underlying store.
func (t *Tracker) Close() error { return t.store.Close() }

// Subscribe registers a callback fired after every mutation, so report and
// history views recompute from fresh state.
func (t *Tracker) Subscribe(fn func()) {
	t.observers = append(t.observers, fn)
}

func (t *Tracker) notify() {
	for _, fn := range t.observers {
		fn()
	}
}

// EditStudent applies a roster edit and, when the barcode changed,
// cascades the rename into every transaction. The display name on
// historical records stays as it was at checkout time.
func (t *Tracker) EditStudent(barcode string, name, newBarcode, email *string) (model.Student, error) {
	s, renamed, err := t.Registry.UpdateStudent(barcode, name, newBarcode, email)
	if err != nil {
		return model.Student{}, err
	}
	if renamed {
		if err := t.Ledger.RenameStudentBarcode(barcode, s.Barcode); err != nil {
			return model.Student{}, err
		}
	}
	return s, nil
}

// EditEquipment applies an inventory edit with the same cascade contract.
func (t *Tracker) EditEquipment(barcode string, equipType, newBarcode, description *string) (model.Equipment, error) {
	e, renamed, err := t.Registry.UpdateEquipment(barcode, equipType, newBarcode, description)
	if err != nil {
		return model.Equipment{}, err
	}
	if renamed {
		if err := t.Ledger.RenameEquipmentBarcode(barcode, e.Barcode); err != nil {
			return model.Equipment{}, err
		}
	}
	return e, nil
}

// DeleteStudent removes a roster record. Transaction history is kept.
func (t *Tracker) DeleteStudent(barcode string) error {
	return t.Registry.DeleteStudent(barcode)
}

// DeleteEquipment removes an inventory record. Transaction history is kept.
func (t *Tracker) DeleteEquipment(barcode string) error {
	return t.Registry.DeleteEquipment(barcode)
}

// Stats computes the summary counters at the ledger's current time.
func (t *Tracker) Stats() report.Stats {
	return report.BuildStats(t.Registry.Students(), t.Registry.Equipment(), t.Ledger.All(), t.Ledger.Now())
}

// CheckedOut builds the currently-out table at the ledger's current time.
func (t *Tracker) CheckedOut() []report.CheckedOutRow {
	return report.CheckedOut(t.Ledger.All(), t.Ledger.Now())
}

// History builds the filtered transaction history at the ledger's current
// time.
func (t *Tracker) History(status, search string) []report.HistoryRow {
	return report.History(t.Ledger.All(), status, search, t.Ledger.Now())
}
