package cli

import (
	"context"
	"fmt"
	"log/slog"

	api "github.com/mind-engage/sensory-profile/internal/api/http"
	"github.com/mind-engage/sensory-profile/internal/config"
	"github.com/mind-engage/sensory-profile/internal/logging"
	"github.com/mind-engage/sensory-profile/internal/scoring"
	urfave "github.com/urfave/cli/v3"
)

func (a *app) serveCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "serve",
		Aliases: []string{"server"},
		Usage:   "Start the HTTP calculator",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:  flagAddr,
				Usage: "Listen address (overrides HTTP_ADDR and PORT)",
			},
		},
		Action: func(ctx context.Context, c *urfave.Command) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if addr := c.String(flagAddr); addr != "" {
				cfg.HTTPAddr = addr
			}
			a.log = a.serveLogger(cfg, c.IsSet(flagLogLevel), c.String(flagLogLevel))
			lenient := cfg.LenientRatings || c.Bool(flagLenient)

			r := api.NewRouter(api.RouterOptions{
				Aggregator: scoring.NewAggregator(
					scoring.WithLenientRatings(lenient),
					scoring.WithLogger(a.log),
				),
				Logger:         a.log,
				CORSOrigins:    cfg.CORSOrigins,
				RequestTimeout: cfg.RequestTimeout,
			})
			if err := api.Serve(ctx, cfg.HTTPAddr, r, cfg.ShutdownTimeout, a.log); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
}

// serveLogger honours LOG_LEVEL and LOG_FORMAT; an explicit --log-level wins
// over LOG_LEVEL.
func (a *app) serveLogger(cfg config.Config, levelFlagSet bool, flagLevel string) *slog.Logger {
	level := cfg.LogLevel
	if levelFlagSet {
		level = flagLevel
	}
	return logging.New(a.errOut, level, cfg.LogFormat)
}
