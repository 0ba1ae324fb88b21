package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GearTrack/internal/model"
	"GearTrack/internal/scan"
	"GearTrack/internal/store"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := Open(store.NewMemory())
	require.NoError(t, err)
	return tr
}

func seed(t *testing.T, tr *Tracker) {
	t.Helper()
	_, err := tr.Registry.AddStudent("Sara Garrett", "Sara", "")
	require.NoError(t, err)
	_, err = tr.Registry.AddEquipment("Microphone", "Mic1", "Rode Mic 1")
	require.NoError(t, err)
}

func TestOpen_LoadsExistingState(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.SaveStudents([]model.Student{{Name: "Sara Garrett", Barcode: "Sara"}}))
	require.NoError(t, st.SaveTransactions([]model.Transaction{
		{ID: "tx-1", StudentBarcode: "Sara", EquipmentBarcode: "Mic1", Status: model.StatusOut},
	}))

	tr, err := Open(st)
	require.NoError(t, err)

	_, ok := tr.Registry.FindStudent("Sara")
	assert.True(t, ok)
	assert.True(t, tr.Ledger.IsCheckedOut("Mic1"))
}

func TestEditStudent_RenameCascades(t *testing.T) {
	tr := newTestTracker(t)
	seed(t, tr)

	sara, _ := tr.Registry.FindStudent("Sara")
	mic, _ := tr.Registry.FindEquipment("Mic1")
	_, err := tr.Ledger.RecordCheckout(sara, mic, "", nil)
	require.NoError(t, err)

	newBarcode := "SG-100"
	s, err := tr.EditStudent("Sara", nil, &newBarcode, nil)
	require.NoError(t, err)
	assert.Equal(t, "SG-100", s.Barcode)

	open := tr.Ledger.OpenTransactionsFor("SG-100")
	require.Len(t, open, 1)
	assert.Equal(t, "Sara Garrett", open[0].StudentName)
	assert.Empty(t, tr.Ledger.OpenTransactionsFor("Sara"))
}

func TestEditEquipment_RenameCascades(t *testing.T) {
	tr := newTestTracker(t)
	seed(t, tr)

	sara, _ := tr.Registry.FindStudent("Sara")
	mic, _ := tr.Registry.FindEquipment("Mic1")
	_, err := tr.Ledger.RecordCheckout(sara, mic, "", nil)
	require.NoError(t, err)

	newBarcode := "RM-01"
	_, err = tr.EditEquipment("Mic1", nil, &newBarcode, nil)
	require.NoError(t, err)

	assert.True(t, tr.Ledger.IsCheckedOut("RM-01"))
	assert.False(t, tr.Ledger.IsCheckedOut("Mic1"))
}

func TestEditWithoutRename_NoCascade(t *testing.T) {
	tr := newTestTracker(t)
	seed(t, tr)

	email := "sara@school.example"
	_, err := tr.EditStudent("Sara", nil, nil, &email)
	require.NoError(t, err)

	s, _ := tr.Registry.FindStudent("Sara")
	assert.Equal(t, email, s.Email)
}

func TestDeleteStudent_KeepsHistory(t *testing.T) {
	tr := newTestTracker(t)
	seed(t, tr)

	sara, _ := tr.Registry.FindStudent("Sara")
	mic, _ := tr.Registry.FindEquipment("Mic1")
	_, err := tr.Ledger.RecordCheckout(sara, mic, "", nil)
	require.NoError(t, err)

	require.NoError(t, tr.DeleteStudent("Sara"))
	_, ok := tr.Registry.FindStudent("Sara")
	assert.False(t, ok)
	// The ledger is untouched: the open record survives the delete.
	assert.Len(t, tr.Ledger.OpenTransactionsFor("Sara"), 1)
}

func TestSubscribe_RefreshSignal(t *testing.T) {
	tr := newTestTracker(t)

	refreshed := 0
	tr.Subscribe(func() { refreshed++ })

	seed(t, tr) // two mutations
	sara, _ := tr.Registry.FindStudent("Sara")
	mic, _ := tr.Registry.FindEquipment("Mic1")
	_, err := tr.Ledger.RecordCheckout(sara, mic, "", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, refreshed)
}

func TestScannerIsWired(t *testing.T) {
	tr := newTestTracker(t)
	seed(t, tr)

	_, err := tr.Scanner.Scan("Sara")
	require.NoError(t, err)
	assert.Equal(t, scan.StateStudentSelected, tr.Scanner.State())

	_, err = tr.Scanner.Scan("Mic1")
	require.NoError(t, err)
	tx, err := tr.Scanner.ConfirmCheckout("", nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOut, tx.Status)
	assert.True(t, tr.Ledger.IsCheckedOut("Mic1"))
}

func TestStatsAndViews(t *testing.T) {
	tr := newTestTracker(t)
	seed(t, tr)

	sara, _ := tr.Registry.FindStudent("Sara")
	mic, _ := tr.Registry.FindEquipment("Mic1")
	past := time.Now().Add(-time.Hour)
	_, err := tr.Ledger.RecordCheckout(sara, mic, "", &past)
	require.NoError(t, err)

	s := tr.Stats()
	assert.Equal(t, 1, s.TotalStudents)
	assert.Equal(t, 1, s.TotalEquipment)
	assert.Equal(t, 1, s.CurrentlyOut)
	assert.Equal(t, 1, s.Overdue)

	rows := tr.CheckedOut()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Overdue)

	history := tr.History("overdue", "")
	require.Len(t, history, 1)
}
