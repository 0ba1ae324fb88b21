// Package export writes the label-printer CSV for equipment and the
// roster backup JSON for students. Both formats are fixed: the CSV header
// and quoting match the files the label software already consumes, and the
// JSON is the pretty-printed student array, photos included.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"GearTrack/internal/model"
)

// EquipmentCSVHeader is the fixed header the label software expects.
const EquipmentCSVHeader = "Type,Barcode,Description"

// EquipmentCSV writes the inventory as CSV. Fields containing a comma,
// quote, or newline are quote-wrapped with embedded quotes doubled.
func EquipmentCSV(w io.Writer, equipment []model.Equipment) error {
	if _, err := fmt.Fprintln(w, EquipmentCSVHeader); err != nil {
		return err
	}
	for _, e := range equipment {
		line := fmt.Sprintf("%s,%s,%s\n",
			escapeCSV(e.Type), escapeCSV(e.Barcode), escapeCSV(e.Description))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func escapeCSV(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// EquipmentCSVFileName is the default export name, dated like the
// downloads the program always produced.
func EquipmentCSVFileName(now time.Time) string {
	return fmt.Sprintf("equipment_labels_%s.csv", now.Format("2006-01-02"))
}

// StudentsJSON writes the roster as a pretty-printed JSON array, embedded
// photo data included.
func StudentsJSON(w io.Writer, students []model.Student) error {
	if students == nil {
		students = []model.Student{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(students)
}
