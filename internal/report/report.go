// Package report derives the display views from the ledger, roster, and
// inventory: summary stats, the currently-out table, and the filterable
// transaction history. Everything here is recomputed at render time;
// overdue status in particular is never persisted.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"GearTrack/internal/model"
)

// Stats is the four-tile summary shown on the scan and reports screens.
type Stats struct {
	TotalStudents  int `json:"totalStudents"`
	TotalEquipment int `json:"totalEquipment"`
	CurrentlyOut   int `json:"currentlyOut"`
	Overdue        int `json:"overdue"`
}

// CheckedOutRow is one line of the currently-out table.
type CheckedOutRow struct {
	StudentName    string     `json:"studentName"`
	EquipmentLabel string     `json:"equipmentLabel"`
	Duration       string     `json:"duration"`
	ExpectedReturn *time.Time `json:"expectedReturn,omitempty"`
	Overdue        bool       `json:"overdue"`
}

// HistoryRow is one line of the transaction history view.
type HistoryRow struct {
	Transaction model.Transaction `json:"transaction"`
	Overdue     bool              `json:"overdue"`
}

// History status filters.
const (
	FilterAll     = "all"
	FilterOut     = "out"
	FilterIn      = "in"
	FilterOverdue = "overdue"
)

// FormatDuration renders elapsed time since checkout the way the displays
// always have: rounded minutes under an hour, rounded hours after that.
func FormatDuration(checkout, now time.Time) string {
	minutes := int(now.Sub(checkout).Round(time.Minute) / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := (minutes + 30) / 60
	return fmt.Sprintf("%d hrs", hours)
}

// BuildStats computes the summary counters at time now.
func BuildStats(students []model.Student, equipment []model.Equipment, transactions []model.Transaction, now time.Time) Stats {
	s := Stats{TotalStudents: len(students), TotalEquipment: len(equipment)}
	for _, t := range transactions {
		if !t.Open() {
			continue
		}
		s.CurrentlyOut++
		if t.Overdue(now) {
			s.Overdue++
		}
	}
	return s
}

// CheckedOut builds the currently-out table rows at time now.
func CheckedOut(transactions []model.Transaction, now time.Time) []CheckedOutRow {
	var rows []CheckedOutRow
	for _, t := range transactions {
		if !t.Open() {
			continue
		}
		rows = append(rows, CheckedOutRow{
			StudentName:    t.StudentName,
			EquipmentLabel: t.EquipmentLabel(),
			Duration:       FormatDuration(t.CheckoutTime, now),
			ExpectedReturn: t.ExpectedReturnTime,
			Overdue:        t.Overdue(now),
		})
	}
	return rows
}

// History returns transactions newest-first, filtered by status
// (all|out|in|overdue) and an optional case-insensitive text search over
// the denormalized display fields.
func History(transactions []model.Transaction, status, search string, now time.Time) []HistoryRow {
	sorted := append([]model.Transaction(nil), transactions...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CheckoutTime.After(sorted[j].CheckoutTime)
	})

	search = strings.ToLower(strings.TrimSpace(search))
	var rows []HistoryRow
	for _, t := range sorted {
		switch status {
		case "", FilterAll:
		case FilterOut, FilterIn:
			if t.Status != status {
				continue
			}
		case FilterOverdue:
			if !t.Overdue(now) {
				continue
			}
		default:
			continue
		}
		if search != "" && !matches(t, search) {
			continue
		}
		rows = append(rows, HistoryRow{Transaction: t, Overdue: t.Overdue(now)})
	}
	return rows
}

func matches(t model.Transaction, search string) bool {
	for _, field := range []string{
		t.StudentName, t.StudentBarcode,
		t.EquipmentType, t.EquipmentBarcode, t.EquipmentDescription,
		t.CheckoutNotes, t.CheckinNotes,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
