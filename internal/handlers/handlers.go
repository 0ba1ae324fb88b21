package handlers

import (
	"GearTrack/internal/config"
	"GearTrack/internal/middleware"
	"GearTrack/internal/tracker"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler builds the report server router.
func NewHandler(t *tracker.Tracker, logger *zap.SugaredLogger, cfg *config.Config) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	reports := NewReportHandler(t, logger)

	r.Get("/api/reports/stats", reports.Stats)
	r.Get("/api/reports/checked-out", reports.CheckedOut)
	r.Get("/api/history", reports.History)
	r.Get("/api/students", reports.Students)
	r.Get("/api/equipment", reports.Equipment)
	r.Get("/api/export/equipment.csv", reports.ExportEquipmentCSV)
	r.Get("/api/export/students.json", reports.ExportStudentsJSON)

	return &Handler{Router: r}
}
