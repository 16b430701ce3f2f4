package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/internal/gamespec"
	"github.com/posetal/posetal/nash"
)

// NewSolveCommand creates the solve command: load a game definition and
// print its equilibria under the chosen solution concept.
func NewSolveCommand(opts *RootOptions) *cobra.Command {
	var concept string

	cmd := &cobra.Command{
		Use:   "solve <definition-dir>",
		Short: "Find equilibria of a game definition",
		Long: `Find equilibria of a game definition.

Concepts:
  pure                    every deviation weakly worse (incomparable disqualifies)
  admissible              no deviation strictly better (incomparable tolerated)
  admissible-undominated  admissible, minus profiles dominated by another`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr(), Verbose: opts.Verbose}

			g, err := gamespec.Load(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "loading definition", err)
			}

			var profiles []game.Profile
			switch concept {
			case "pure":
				profiles, err = nash.FindPureNash(g)
			case "admissible":
				profiles, err = nash.FindAdmissible(g)
			case "admissible-undominated":
				profiles, err = nash.FindAdmissibleUndominated(g)
			default:
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown concept %q", concept))
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "solving", err)
			}

			names := make([]string, len(profiles))
			for i, p := range profiles {
				names[i] = p.String()
			}
			if opts.Format == "json" {
				return out.Success(map[string]any{
					"concept":    concept,
					"equilibria": names,
					"count":      len(names),
				})
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s equilibria: %d", concept, len(names))
			for _, n := range names {
				fmt.Fprintf(&b, "\n  %s", n)
			}
			return out.Success(b.String())
		},
	}

	cmd.Flags().StringVar(&concept, "concept", "admissible-undominated", "solution concept (pure|admissible|admissible-undominated)")
	return cmd
}
