package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posetal/posetal/internal/gamespec"
)

// NewValidateCommand creates the validate command: compile a game
// definition and report its shape without solving anything.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <definition-dir>",
		Short: "Validate a CUE game definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr(), Verbose: opts.Verbose}

			g, err := gamespec.Load(args[0])
			if err != nil {
				var se *gamespec.SpecError
				if errors.As(err, &se) {
					out.Error(se.Code, se.Message, nil)
					return NewExitError(ExitFailure, se.Error())
				}
				return WrapExitError(ExitCommandError, "loading definition", err)
			}

			players := g.Players()
			summary := map[string]any{
				"game_key": g.Key(),
				"players":  len(players),
				"metrics":  g.MetricNames(),
				"profiles": len(g.Profiles()),
			}
			if opts.Format == "json" {
				return out.Success(summary)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "valid: %d players, %d metrics, %d profiles\n", len(players), len(g.MetricNames()), len(g.Profiles()))
			for _, p := range players {
				fmt.Fprintf(&b, "  %s: actions=%v\n", p.ID, p.Actions)
			}
			fmt.Fprintf(&b, "game key: %s", g.Key())
			return out.Success(b.String())
		},
	}
}
