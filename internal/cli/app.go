package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mind-engage/sensory-profile/internal/logging"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

const (
	flagLogLevel = "log-level"
	flagLenient  = "lenient"
	flagFormat   = "format"
	flagFile     = "file"
	flagAddr     = "addr"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

// formatFlag returns a fresh flag per command tree; urfave keeps parsed
// state on flag values.
func formatFlag() *urfave.StringFlag {
	return &urfave.StringFlag{
		Name:  flagFormat,
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
}

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut, log: logging.New(errOut, "info", "text")}
	if err := a.command().Run(ctx, args); err != nil {
		a.log.Error("fatal error", "error", err)
		return 1
	}
	return 0
}

func (a *app) command() *urfave.Command {
	return &urfave.Command{
		Name:      "sensoryctl",
		Version:   fmt.Sprintf("%s (%s)", version, commit),
		Usage:     "Score sensory profile questionnaires",
		Reader:    a.in,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:  flagLogLevel,
				Usage: "Log level [debug, info, warn, error]",
				Value: "info",
			},
			&urfave.BoolFlag{
				Name:  flagLenient,
				Usage: "Count ratings that are not integers as 0 instead of failing",
			},
		},
		Commands: []*urfave.Command{
			a.scoreCmd(),
			a.tablesCmd(),
			a.serveCmd(),
		},
		Before: func(ctx context.Context, c *urfave.Command) (context.Context, error) {
			a.log = logging.New(a.errOut, c.String(flagLogLevel), "text")
			return ctx, nil
		},
	}
}

func writeOutput(w io.Writer, format string, v any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
