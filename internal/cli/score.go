package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mind-engage/sensory-profile/internal/scoring"
	urfave "github.com/urfave/cli/v3"
)

type scoreOutput struct {
	scoring.Totals `yaml:",inline"`
	Report         []scoring.Line `json:"report" yaml:"report"`
}

func (a *app) scoreCmd() *urfave.Command {
	return &urfave.Command{
		Name:  "score",
		Usage: "Compute section and quadrant totals",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:    flagFile,
				Aliases: []string{"f"},
				Usage:   "JSON file with {\"scores\": {...}} or a bare score object; - reads stdin",
				Value:   "-",
			},
			formatFlag(),
		},
		Action: func(_ context.Context, c *urfave.Command) error {
			b, err := a.readInput(c.String(flagFile))
			if err != nil {
				return err
			}
			scores, err := parseScores(b)
			if err != nil {
				return err
			}

			agg := scoring.NewAggregator(
				scoring.WithLenientRatings(c.Bool(flagLenient)),
				scoring.WithLogger(a.log),
			)
			totals, err := agg.Compute(scores)
			if err != nil {
				return fmt.Errorf("compute: %w", err)
			}
			a.log.Debug("scored", "questions", len(scores))
			return writeOutput(a.out, c.String(flagFormat), scoreOutput{Totals: totals, Report: totals.Report()})
		},
	}
}

func (a *app) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// parseScores accepts {"scores": {...}} or the score object itself.
func parseScores(b []byte) (scoring.Scores, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if inner, ok := m["scores"]; ok {
		if inner == nil {
			return nil, scoring.ErrInvalidInput
		}
		s, ok := inner.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("scores must be an object, got %T", inner)
		}
		return scoring.Scores(s), nil
	}
	return scoring.Scores(m), nil
}
