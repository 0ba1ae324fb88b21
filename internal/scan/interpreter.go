// Package scan interprets barcode scans against the roster, the
// inventory, and the transaction ledger. A scan means different things in
// different states (identify a student, pick equipment to check out, start
// a check-in), so the interpreter is a small session state machine; the
// session is serializable because the CLI runs one command per process.
package scan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"GearTrack/internal/ledger"
	"GearTrack/internal/model"
	"GearTrack/internal/registry"
)

// State of the scan session.
type State string

const (
	// StateIdle: nothing selected; the next scan identifies a student or
	// starts a check-in.
	StateIdle State = "idle"
	// StateStudentSelected: a student with no open items was scanned;
	// awaiting an equipment scan.
	StateStudentSelected State = "student_selected"
	// StateAwaitingCheckoutConfirm: student and equipment are both known;
	// a draft checkout awaits explicit confirmation.
	StateAwaitingCheckoutConfirm State = "awaiting_checkout_confirm"
	// StateAwaitingCheckinConfirm: a checked-out item was scanned with no
	// student selected; its open transaction awaits check-in confirmation.
	StateAwaitingCheckinConfirm State = "awaiting_checkin_confirm"
	// StateStudentHasOpenItems: the scanned student has open items; they
	// can be returned one by one, all at once, or the student can proceed
	// to another checkout.
	StateStudentHasOpenItems State = "student_has_open_items"
)

// Check-in notes recorded for the two list-driven return paths.
const (
	SingleCheckinNotes = "Single item check-in"
	BatchCheckinNotes  = "Batch check-in (all items)"
)

// Session is the serializable scan state carried between CLI invocations.
// The id is fresh per flow and only used to correlate emitted events.
type Session struct {
	ID               string     `json:"id"`
	State            State      `json:"state"`
	StudentBarcode   string     `json:"studentBarcode,omitempty"`
	EquipmentBarcode string     `json:"equipmentBarcode,omitempty"`
	ExpectedReturn   *time.Time `json:"expectedReturn,omitempty"`
}

// Event describes a state change for display: the new state plus whatever
// records the view needs to render it.
type Event struct {
	Session      Session
	Message      string
	Student      *model.Student
	Equipment    *model.Equipment
	Transactions []model.Transaction
}

// Interpreter drives the session state machine. It reads the roster and
// inventory, and mutates the ledger only on confirmed actions.
type Interpreter struct {
	reg      *registry.Registry
	led      *ledger.Ledger
	session  Session
	listener func(Event)
}

// New creates an interpreter in the Idle state.
func New(reg *registry.Registry, led *ledger.Ledger) *Interpreter {
	return &Interpreter{
		reg:     reg,
		led:     led,
		session: Session{ID: uuid.NewString(), State: StateIdle},
	}
}

// OnStateChange registers a listener invoked with every emitted event.
func (i *Interpreter) OnStateChange(fn func(Event)) { i.listener = fn }

// Restore resumes a previously saved session.
func (i *Interpreter) Restore(s Session) {
	if s.State == "" {
		return
	}
	i.session = s
}

// Session returns the current session for persistence.
func (i *Interpreter) Session() Session { return i.session }

// State returns the current state.
func (i *Interpreter) State() State { return i.session.State }

// NextReturnTime is the default expected return for a draft checkout:
// 15:00 local time on the following day, end of the school day.
func NextReturnTime(now time.Time) time.Time {
	d := now.AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 15, 0, 0, 0, now.Location())
}

// Scan interprets one barcode. Student lookup is always attempted before
// equipment lookup, so a code matching both is a student match. Errors are
// user-facing and leave the state unchanged.
func (i *Interpreter) Scan(code string) (Event, error) {
	if err := model.ValidateBarcode(code); err != nil {
		return Event{}, err
	}

	// A scanned student pass only means identification when no student is
	// selected yet; mid-flow it falls through to the equipment lookup.
	if i.session.StudentBarcode == "" {
		if student, ok := i.reg.FindStudent(code); ok {
			return i.selectStudent(student), nil
		}
	}

	equipment, ok := i.reg.FindEquipment(code)
	if !ok {
		return Event{}, fmt.Errorf("%q: %w", code, model.ErrNotFound)
	}

	active, checkedOut := i.led.ActiveTransaction(equipment.Barcode)
	switch {
	case checkedOut && i.session.StudentBarcode == "":
		// No student selected and the item is out: start a check-in.
		i.session.State = StateAwaitingCheckinConfirm
		i.session.EquipmentBarcode = equipment.Barcode
		return i.emit(Event{
			Message:      fmt.Sprintf("Checking in %s from %s", active.EquipmentLabel(), active.StudentName),
			Equipment:    &equipment,
			Transactions: []model.Transaction{active},
		}), nil

	case checkedOut:
		return Event{}, fmt.Errorf("%w to %s", model.ErrAlreadyCheckedOut, active.StudentName)

	case i.session.StudentBarcode == "":
		return Event{}, model.ErrNoStudent

	default:
		// Student selected, item available: draft a checkout. A repeated
		// equipment scan simply replaces the draft item.
		student, ok := i.reg.FindStudent(i.session.StudentBarcode)
		if !ok {
			// The student was deleted mid-session; nothing sane to confirm.
			i.reset()
			return Event{}, fmt.Errorf("student %q: %w", i.session.StudentBarcode, model.ErrNotFound)
		}
		ret := NextReturnTime(i.led.Now())
		i.session.State = StateAwaitingCheckoutConfirm
		i.session.EquipmentBarcode = equipment.Barcode
		i.session.ExpectedReturn = &ret
		return i.emit(Event{
			Message:   fmt.Sprintf("Checkout %s to %s: confirm or cancel", equipment.Label(), student.Name),
			Student:   &student,
			Equipment: &equipment,
		}), nil
	}
}

func (i *Interpreter) selectStudent(student model.Student) Event {
	open := i.led.OpenTransactionsFor(student.Barcode)
	i.session.StudentBarcode = student.Barcode
	if len(open) > 0 {
		i.session.State = StateStudentHasOpenItems
		return i.emit(Event{
			Message:      fmt.Sprintf("%s has %d item(s) out", student.Name, len(open)),
			Student:      &student,
			Transactions: open,
		})
	}
	i.session.State = StateStudentSelected
	return i.emit(Event{
		Message: fmt.Sprintf("Student: %s. Now scan equipment to check out.", student.Name),
		Student: &student,
	})
}

// ConfirmCheckout records the drafted checkout. A nil expectedReturn keeps
// the draft default; the session resets to Idle on success.
func (i *Interpreter) ConfirmCheckout(notes string, expectedReturn *time.Time) (model.Transaction, error) {
	if i.session.State != StateAwaitingCheckoutConfirm {
		return model.Transaction{}, fmt.Errorf("no checkout awaiting confirmation (state %s)", i.session.State)
	}
	student, ok := i.reg.FindStudent(i.session.StudentBarcode)
	if !ok {
		i.reset()
		return model.Transaction{}, fmt.Errorf("student %q: %w", i.session.StudentBarcode, model.ErrNotFound)
	}
	equipment, ok := i.reg.FindEquipment(i.session.EquipmentBarcode)
	if !ok {
		i.reset()
		return model.Transaction{}, fmt.Errorf("equipment %q: %w", i.session.EquipmentBarcode, model.ErrNotFound)
	}
	if expectedReturn == nil {
		expectedReturn = i.session.ExpectedReturn
	}
	tx, err := i.led.RecordCheckout(student, equipment, notes, expectedReturn)
	if err != nil {
		return model.Transaction{}, err
	}
	i.reset()
	i.emit(Event{
		Message:      fmt.Sprintf("%s checked out to %s", equipment.Type, student.Name),
		Transactions: []model.Transaction{tx},
	})
	return tx, nil
}

// ConfirmCheckin closes the open transaction for the scanned item and
// resets the session.
func (i *Interpreter) ConfirmCheckin(notes string) (model.Transaction, error) {
	if i.session.State != StateAwaitingCheckinConfirm {
		return model.Transaction{}, fmt.Errorf("no check-in awaiting confirmation (state %s)", i.session.State)
	}
	tx, err := i.led.RecordCheckin(i.session.EquipmentBarcode, notes)
	if err != nil {
		i.reset()
		return model.Transaction{}, err
	}
	i.reset()
	i.emit(Event{
		Message:      fmt.Sprintf("%s checked in successfully", tx.EquipmentType),
		Transactions: []model.Transaction{tx},
	})
	return tx, nil
}

// CheckinOne returns a single item from the selected student's open-items
// list. The session stays in StateStudentHasOpenItems while more items
// remain, and resets once the list is empty.
func (i *Interpreter) CheckinOne(equipmentBarcode string) (model.Transaction, int, error) {
	if i.session.State != StateStudentHasOpenItems {
		return model.Transaction{}, 0, fmt.Errorf("no open-items list active (state %s)", i.session.State)
	}
	tx, err := i.led.RecordCheckin(equipmentBarcode, SingleCheckinNotes)
	if err != nil {
		return model.Transaction{}, 0, err
	}
	remaining := i.led.OpenTransactionsFor(i.session.StudentBarcode)
	if len(remaining) == 0 {
		i.reset()
		i.emit(Event{Message: fmt.Sprintf("All equipment returned by %s", tx.StudentName)})
	} else {
		i.emit(Event{
			Message:      "Item checked in successfully",
			Transactions: remaining,
		})
	}
	return tx, len(remaining), nil
}

// CheckinAll returns every open item for the selected student and resets
// the session. Each record closes independently.
func (i *Interpreter) CheckinAll() (int, error) {
	if i.session.State != StateStudentHasOpenItems {
		return 0, fmt.Errorf("no open-items list active (state %s)", i.session.State)
	}
	count, err := i.led.RecordCheckinAll(i.session.StudentBarcode, BatchCheckinNotes)
	if err != nil {
		return count, err
	}
	i.reset()
	i.emit(Event{Message: fmt.Sprintf("%d item(s) checked in", count)})
	return count, nil
}

// ProceedToCheckout keeps the selected student and moves on to an
// equipment scan despite their open items.
func (i *Interpreter) ProceedToCheckout() (Event, error) {
	if i.session.State != StateStudentHasOpenItems {
		return Event{}, fmt.Errorf("no open-items list active (state %s)", i.session.State)
	}
	student, ok := i.reg.FindStudent(i.session.StudentBarcode)
	if !ok {
		i.reset()
		return Event{}, fmt.Errorf("student %q: %w", i.session.StudentBarcode, model.ErrNotFound)
	}
	i.session.State = StateStudentSelected
	return i.emit(Event{
		Message: fmt.Sprintf("Student: %s. Now scan equipment to check out.", student.Name),
		Student: &student,
	}), nil
}

// Cancel discards any draft and returns to Idle without touching the
// ledger. Valid in every state.
func (i *Interpreter) Cancel() Event {
	i.reset()
	return i.emit(Event{Message: "Transaction cancelled"})
}

func (i *Interpreter) reset() {
	i.session = Session{ID: uuid.NewString(), State: StateIdle}
}

func (i *Interpreter) emit(e Event) Event {
	e.Session = i.session
	if i.listener != nil {
		i.listener(e)
	}
	return e
}
