package cli

import (
	"context"

	"github.com/mind-engage/sensory-profile/internal/scoring"
	urfave "github.com/urfave/cli/v3"
)

func (a *app) tablesCmd() *urfave.Command {
	return &urfave.Command{
		Name:  "tables",
		Usage: "Print the section, quadrant and exclusion tables",
		Flags: []urfave.Flag{formatFlag()},
		Action: func(_ context.Context, c *urfave.Command) error {
			return writeOutput(a.out, c.String(flagFormat), scoring.Describe())
		},
	}
}
