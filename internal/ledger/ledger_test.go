package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GearTrack/internal/model"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqGen struct{ n int }

func (g *seqGen) New() (string, error) {
	g.n++
	return fmt.Sprintf("tx-%d", g.n), nil
}

var (
	sara = model.Student{Name: "Sara Garrett", Barcode: "SG-001"}
	jack = model.Student{Name: "Jack Kolarich", Barcode: "JK-002"}
	mic1 = model.Equipment{Type: "Microphone", Barcode: "Mic1", Description: "Rode Mic 1"}
	mic2 = model.Equipment{Type: "Microphone", Barcode: "Mic2", Description: "Rode Mic 2"}
)

func newTestLedger(t *testing.T, now time.Time) (*Ledger, *[]model.Transaction) {
	t.Helper()
	var saved []model.Transaction
	l := New(nil, func(txs []model.Transaction) error {
		saved = append([]model.Transaction(nil), txs...)
		return nil
	})
	l.SetClock(fixedClock{t: now})
	l.SetIDGen(&seqGen{})
	return l, &saved
}

func TestRecordCheckout_ThenCheckedOut(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	l, saved := newTestLedger(t, now)

	tx, err := l.RecordCheckout(sara, mic1, "field trip", nil)
	require.NoError(t, err)

	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, "Sara Garrett", tx.StudentName)
	assert.Equal(t, "SG-001", tx.StudentBarcode)
	assert.Equal(t, "Mic1", tx.EquipmentBarcode)
	assert.Equal(t, "Rode Mic 1", tx.EquipmentDescription)
	assert.Equal(t, model.StatusOut, tx.Status)
	assert.True(t, now.Equal(tx.CheckoutTime))
	assert.Nil(t, tx.CheckinTime)

	assert.True(t, l.IsCheckedOut("Mic1"))
	assert.Len(t, *saved, 1)
}

func TestRecordCheckout_RefusesDoubleCheckout(t *testing.T) {
	l, _ := newTestLedger(t, time.Now())

	_, err := l.RecordCheckout(sara, mic1, "", nil)
	require.NoError(t, err)

	_, err = l.RecordCheckout(jack, mic1, "", nil)
	require.ErrorIs(t, err, model.ErrAlreadyCheckedOut)

	// Invariant: at most one open transaction per equipment barcode.
	assert.Len(t, l.OpenTransactions("Mic1"), 1)
}

func TestRecordCheckin_ClosesAndClears(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	l, _ := newTestLedger(t, now)

	_, err := l.RecordCheckout(sara, mic1, "", nil)
	require.NoError(t, err)

	tx, err := l.RecordCheckin("Mic1", "scratched windscreen")
	require.NoError(t, err)
	assert.Equal(t, model.StatusIn, tx.Status)
	require.NotNil(t, tx.CheckinTime)
	assert.Equal(t, "scratched windscreen", tx.CheckinNotes)

	assert.False(t, l.IsCheckedOut("Mic1"))
	// Closed records are kept, not removed.
	assert.Len(t, l.All(), 1)
}

func TestRecordCheckin_NotFound(t *testing.T) {
	l, _ := newTestLedger(t, time.Now())
	_, err := l.RecordCheckin("Mic1", "")
	assert.ErrorIs(t, err, model.ErrNotCheckedOut)
}

func TestRecordCheckout_AfterCheckin_Allowed(t *testing.T) {
	l, _ := newTestLedger(t, time.Now())

	_, err := l.RecordCheckout(sara, mic1, "", nil)
	require.NoError(t, err)
	_, err = l.RecordCheckin("Mic1", "")
	require.NoError(t, err)

	_, err = l.RecordCheckout(jack, mic1, "", nil)
	require.NoError(t, err)
	assert.True(t, l.IsCheckedOut("Mic1"))
	assert.Len(t, l.All(), 2)
}

func TestRecordCheckinAll(t *testing.T) {
	l, saved := newTestLedger(t, time.Now())

	_, err := l.RecordCheckout(sara, mic1, "", nil)
	require.NoError(t, err)
	_, err = l.RecordCheckout(sara, mic2, "", nil)
	require.NoError(t, err)
	_, err = l.RecordCheckout(jack, model.Equipment{Type: "Tripod", Barcode: "Tri1"}, "", nil)
	require.NoError(t, err)

	count, err := l.RecordCheckinAll("SG-001", "Batch check-in (all items)")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Empty(t, l.OpenTransactionsFor("SG-001"))
	// Jack's item stays out.
	assert.Len(t, l.OpenTransactionsFor("JK-002"), 1)
	assert.Len(t, *saved, 3)
}

func TestRecordCheckinAll_NoOpenItems(t *testing.T) {
	l, _ := newTestLedger(t, time.Now())
	count, err := l.RecordCheckinAll("SG-001", "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRenameStudentBarcode_CascadesButKeepsName(t *testing.T) {
	l, _ := newTestLedger(t, time.Now())

	_, err := l.RecordCheckout(sara, mic1, "", nil)
	require.NoError(t, err)
	_, err = l.RecordCheckin("Mic1", "")
	require.NoError(t, err)
	_, err = l.RecordCheckout(sara, mic2, "", nil)
	require.NoError(t, err)

	require.NoError(t, l.RenameStudentBarcode("SG-001", "SG-100"))

	for _, tx := range l.All() {
		assert.Equal(t, "SG-100", tx.StudentBarcode)
		// Denormalized display name is a point-in-time copy.
		assert.Equal(t, "Sara Garrett", tx.StudentName)
	}
	assert.Len(t, l.OpenTransactionsFor("SG-100"), 1)
	assert.Empty(t, l.OpenTransactionsFor("SG-001"))
}

func TestRenameEquipmentBarcode_CascadesAllStatuses(t *testing.T) {
	l, _ := newTestLedger(t, time.Now())

	_, err := l.RecordCheckout(sara, mic1, "", nil)
	require.NoError(t, err)
	_, err = l.RecordCheckin("Mic1", "")
	require.NoError(t, err)
	_, err = l.RecordCheckout(jack, mic1, "", nil)
	require.NoError(t, err)

	require.NoError(t, l.RenameEquipmentBarcode("Mic1", "RM-01"))

	for _, tx := range l.All() {
		assert.Equal(t, "RM-01", tx.EquipmentBarcode)
		assert.Equal(t, "Rode Mic 1", tx.EquipmentDescription)
	}
	assert.True(t, l.IsCheckedOut("RM-01"))
	assert.False(t, l.IsCheckedOut("Mic1"))
}

func TestRename_NoMatchDoesNotSave(t *testing.T) {
	l, saved := newTestLedger(t, time.Now())
	require.NoError(t, l.RenameEquipmentBarcode("nope", "still-nope"))
	assert.Nil(t, *saved)
}

func TestOnChange_FiresOnEveryMutation(t *testing.T) {
	l, _ := newTestLedger(t, time.Now())
	fired := 0
	l.OnChange(func() { fired++ })

	_, err := l.RecordCheckout(sara, mic1, "", nil)
	require.NoError(t, err)
	_, err = l.RecordCheckin("Mic1", "")
	require.NoError(t, err)

	assert.Equal(t, 2, fired)
}
