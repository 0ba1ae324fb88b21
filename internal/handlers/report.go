package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"GearTrack/internal/export"
	"GearTrack/internal/model"
	"GearTrack/internal/report"
	"GearTrack/internal/tracker"
)

// ReportHandler serves the read-only report and export endpoints.
type ReportHandler struct {
	Tracker *tracker.Tracker
	Logger  *zap.SugaredLogger
}

func NewReportHandler(t *tracker.Tracker, logger *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{Tracker: t, Logger: logger}
}

// EquipmentDTO is an inventory row with its live checked-out flag.
type EquipmentDTO struct {
	Type        string `json:"type"`
	Barcode     string `json:"barcode"`
	Description string `json:"description,omitempty"`
	CheckedOut  bool   `json:"checkedOut"`
}

func (h *ReportHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Errorw("write response", "error", err)
	}
}

// Stats returns the four summary counters.
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.Tracker.Stats())
}

// CheckedOut returns the currently-out table.
func (h *ReportHandler) CheckedOut(w http.ResponseWriter, r *http.Request) {
	rows := h.Tracker.CheckedOut()
	if rows == nil {
		rows = []report.CheckedOutRow{}
	}
	h.writeJSON(w, rows)
}

// History returns the transaction history, filtered by ?status= and ?q=.
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = report.FilterAll
	}
	switch status {
	case report.FilterAll, report.FilterOut, report.FilterIn, report.FilterOverdue:
	default:
		http.Error(w, fmt.Sprintf("unknown status %q", status), http.StatusBadRequest)
		return
	}
	rows := h.Tracker.History(status, r.URL.Query().Get("q"))
	if rows == nil {
		rows = []report.HistoryRow{}
	}
	h.writeJSON(w, rows)
}

// Students returns the roster.
func (h *ReportHandler) Students(w http.ResponseWriter, r *http.Request) {
	list := h.Tracker.Registry.Students()
	if list == nil {
		list = []model.Student{}
	}
	h.writeJSON(w, list)
}

// Equipment returns the inventory with live checked-out flags.
func (h *ReportHandler) Equipment(w http.ResponseWriter, r *http.Request) {
	list := h.Tracker.Registry.Equipment()
	rows := make([]EquipmentDTO, 0, len(list))
	for _, e := range list {
		rows = append(rows, EquipmentDTO{
			Type:        e.Type,
			Barcode:     e.Barcode,
			Description: e.Description,
			CheckedOut:  h.Tracker.Ledger.IsCheckedOut(e.Barcode),
		})
	}
	h.writeJSON(w, rows)
}

// ExportEquipmentCSV streams the label-printer CSV as a download.
func (h *ReportHandler) ExportEquipmentCSV(w http.ResponseWriter, r *http.Request) {
	name := export.EquipmentCSVFileName(h.Tracker.Ledger.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := export.EquipmentCSV(w, h.Tracker.Registry.Equipment()); err != nil {
		h.Logger.Errorw("export equipment csv", "error", err)
	}
}

// ExportStudentsJSON streams the roster backup as a download.
func (h *ReportHandler) ExportStudentsJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="students.json"`)
	if err := export.StudentsJSON(w, h.Tracker.Registry.Students()); err != nil {
		h.Logger.Errorw("export students json", "error", err)
	}
}
