package main

import (
	"net/http"

	"go.uber.org/zap"

	"GearTrack/internal/bootstrap"
	"GearTrack/internal/config"
	"GearTrack/internal/handlers"
	"GearTrack/internal/middleware"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	t, done, err := bootstrap.OpenTracker(cfg)
	if err != nil {
		sugar.Fatalw("failed to open tracker", "error", err)
	}
	defer func() { _ = done() }()

	h := handlers.NewHandler(t, sugar, cfg)

	sugar.Infow("Starting report server",
		"addr", cfg.BaseURL,
		"db", cfg.DBPath,
		"url", cfg.ServerURL,
	)

	if err := http.ListenAndServe(cfg.BaseURL, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
