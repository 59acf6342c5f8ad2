package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	api "github.com/mind-engage/sensory-profile/internal/api/http"
	"github.com/mind-engage/sensory-profile/internal/config"
	"github.com/mind-engage/sensory-profile/internal/logging"
	"github.com/mind-engage/sensory-profile/internal/scoring"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logging.New(os.Stderr, "error", "text").Error("config", "error", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	agg := scoring.NewAggregator(
		scoring.WithLenientRatings(cfg.LenientRatings),
		scoring.WithLogger(log),
	)

	r := api.NewRouter(api.RouterOptions{
		Aggregator:     agg,
		Logger:         log,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", "addr", cfg.HTTPAddr, "lenient_ratings", cfg.LenientRatings)
	if err := api.Serve(ctx, cfg.HTTPAddr, r, cfg.ShutdownTimeout, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
