// Package ledger owns the checkout/check-in records and the bookkeeping
// invariants over them: at most one open transaction per equipment item,
// open ⇔ no check-in time, and barcode renames cascading into history.
// Records are never deleted once created.
package ledger

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"GearTrack/internal/model"
)

// Clock provides the current time. Injected so tests control "now".
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// IDGen provides fresh transaction identifiers.
type IDGen interface {
	New() (string, error)
}

type ulidGen struct{}

func (ulidGen) New() (string, error) {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// SaveFunc persists the whole transaction collection after a mutation.
type SaveFunc func([]model.Transaction) error

// Ledger holds the in-memory transaction log and writes it back through
// save after every mutation. Single-writer: all calls come from one
// command at a time.
type Ledger struct {
	transactions []model.Transaction
	save         SaveFunc
	clock        Clock
	id           IDGen
	onChange     func()
}

// New creates a Ledger over an existing transaction log.
func New(transactions []model.Transaction, save SaveFunc) *Ledger {
	return &Ledger{
		transactions: transactions,
		save:         save,
		clock:        realClock{},
		id:           ulidGen{},
	}
}

// SetClock replaces the time source.
func (l *Ledger) SetClock(c Clock) { l.clock = c }

// SetIDGen replaces the identifier source.
func (l *Ledger) SetIDGen(g IDGen) { l.id = g }

// OnChange registers a callback fired after every successful mutation, so
// report/history views can recompute.
func (l *Ledger) OnChange(fn func()) { l.onChange = fn }

// Now exposes the ledger's clock for display-time computations.
func (l *Ledger) Now() time.Time { return l.clock.Now() }

// All returns a copy of every transaction, open and closed.
func (l *Ledger) All() []model.Transaction {
	return append([]model.Transaction(nil), l.transactions...)
}

// OpenTransactions returns all open records, optionally filtered by
// equipment barcode (pass "" for no filter).
func (l *Ledger) OpenTransactions(equipmentBarcode string) []model.Transaction {
	var out []model.Transaction
	for _, t := range l.transactions {
		if !t.Open() {
			continue
		}
		if equipmentBarcode != "" && t.EquipmentBarcode != equipmentBarcode {
			continue
		}
		out = append(out, t)
	}
	return out
}

// OpenTransactionsFor returns the open records for one student.
func (l *Ledger) OpenTransactionsFor(studentBarcode string) []model.Transaction {
	var out []model.Transaction
	for _, t := range l.transactions {
		if t.Open() && t.StudentBarcode == studentBarcode {
			out = append(out, t)
		}
	}
	return out
}

// IsCheckedOut reports whether the item has an open transaction.
func (l *Ledger) IsCheckedOut(equipmentBarcode string) bool {
	_, ok := l.ActiveTransaction(equipmentBarcode)
	return ok
}

// ActiveTransaction returns the unique open transaction for an item.
func (l *Ledger) ActiveTransaction(equipmentBarcode string) (model.Transaction, bool) {
	for _, t := range l.transactions {
		if t.Open() && t.EquipmentBarcode == equipmentBarcode {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// RecordCheckout creates an open transaction for (student, equipment).
// Refuses with ErrAlreadyCheckedOut if the item is already out. Display
// fields are copied from the records as they are right now.
func (l *Ledger) RecordCheckout(student model.Student, equipment model.Equipment, notes string, expectedReturn *time.Time) (model.Transaction, error) {
	if l.IsCheckedOut(equipment.Barcode) {
		return model.Transaction{}, fmt.Errorf("%q: %w", equipment.Barcode, model.ErrAlreadyCheckedOut)
	}
	id, err := l.id.New()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("generate transaction id: %w", err)
	}
	tx := model.Transaction{
		ID:                   id,
		StudentName:          student.Name,
		StudentBarcode:       student.Barcode,
		EquipmentType:        equipment.Type,
		EquipmentBarcode:     equipment.Barcode,
		EquipmentDescription: equipment.Description,
		CheckoutTime:         l.clock.Now(),
		ExpectedReturnTime:   expectedReturn,
		Status:               model.StatusOut,
		CheckoutNotes:        notes,
	}
	l.transactions = append(l.transactions, tx)
	if err := l.persist(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// RecordCheckin closes the open transaction for the item, setting the
// check-in time and notes. Returns ErrNotCheckedOut when there is none.
func (l *Ledger) RecordCheckin(equipmentBarcode, notes string) (model.Transaction, error) {
	for i := range l.transactions {
		t := &l.transactions[i]
		if !t.Open() || t.EquipmentBarcode != equipmentBarcode {
			continue
		}
		now := l.clock.Now()
		t.CheckinTime = &now
		t.Status = model.StatusIn
		t.CheckinNotes = notes
		if err := l.persist(); err != nil {
			return model.Transaction{}, err
		}
		return *t, nil
	}
	return model.Transaction{}, fmt.Errorf("%q: %w", equipmentBarcode, model.ErrNotCheckedOut)
}

// RecordCheckinAll closes every open transaction for the student. Each
// record closes independently; the count of closed records is returned.
func (l *Ledger) RecordCheckinAll(studentBarcode, notes string) (int, error) {
	count := 0
	for i := range l.transactions {
		t := &l.transactions[i]
		if !t.Open() || t.StudentBarcode != studentBarcode {
			continue
		}
		now := l.clock.Now()
		t.CheckinTime = &now
		t.Status = model.StatusIn
		t.CheckinNotes = notes
		count++
	}
	if count == 0 {
		return 0, nil
	}
	if err := l.persist(); err != nil {
		return count, err
	}
	return count, nil
}

// RenameEquipmentBarcode rewrites the equipment barcode on every matching
// record, open or closed. Denormalized display fields stay as they were.
func (l *Ledger) RenameEquipmentBarcode(old, new string) error {
	changed := false
	for i := range l.transactions {
		if l.transactions[i].EquipmentBarcode == old {
			l.transactions[i].EquipmentBarcode = new
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return l.persist()
}

// RenameStudentBarcode rewrites the student barcode on every matching
// record, open or closed.
func (l *Ledger) RenameStudentBarcode(old, new string) error {
	changed := false
	for i := range l.transactions {
		if l.transactions[i].StudentBarcode == old {
			l.transactions[i].StudentBarcode = new
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return l.persist()
}

func (l *Ledger) persist() error {
	if l.save != nil {
		if err := l.save(l.transactions); err != nil {
			return fmt.Errorf("save transactions: %w", err)
		}
	}
	if l.onChange != nil {
		l.onChange()
	}
	return nil
}
