package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posetal/posetal/internal/harness"
	"github.com/posetal/posetal/internal/store"
)

// NewLearnCommand creates the learn command: replay a learning scenario
// and, when a database path is given, persist the session trajectory.
func NewLearnCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "learn <scenario.yaml>",
		Short: "Run a learning scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr(), Verbose: opts.Verbose}

			scenario, err := harness.LoadScenario(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "loading scenario", err)
			}
			result, err := harness.Run(scenario)
			if err != nil {
				return WrapExitError(ExitFailure, "running scenario", err)
			}
			if err := harness.Verify(scenario, result); err != nil {
				return WrapExitError(ExitFailure, "scenario assertions failed", err)
			}

			if dbPath != "" {
				if err := persistResult(cmd, scenario, result, dbPath); err != nil {
					return WrapExitError(ExitCommandError, "persisting session", err)
				}
				out.VerboseLog("session %s written to %s", result.SessionID, dbPath)
			}

			final := result.Final()
			if opts.Format == "json" {
				weights := make(map[string]any, len(final))
				for i, w := range final {
					weights[fmt.Sprintf("%d", i)] = store.FormatWeight(w)
				}
				return out.Success(map[string]any{
					"session_id": result.SessionID,
					"rounds":     len(result.Rounds),
					"weights":    weights,
				})
			}

			var b strings.Builder
			fmt.Fprintf(&b, "session %s: %d rounds", result.SessionID, len(result.Rounds))
			for i, w := range final {
				fmt.Fprintf(&b, "\n  candidate %d: %s", i, store.FormatWeight(w))
			}
			return out.Success(b.String())
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database for the session log (omit to skip persistence)")
	return cmd
}

func persistResult(cmd *cobra.Command, scenario *harness.Scenario, result *harness.Result, dbPath string) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if err := s.CreateSession(ctx, store.SessionRecord{
		ID:       result.SessionID,
		GameKey:  result.Game.Key(),
		PlayerID: scenario.Player,
		Mode:     scenario.Mode,
	}); err != nil {
		return err
	}

	for _, r := range result.Rounds {
		weights := make(map[string]float64, len(r.Weights))
		for i, w := range r.Weights {
			weights[result.Candidates[i].Key()] = w
		}
		encoded, err := store.EncodeBelief(weights)
		if err != nil {
			return err
		}
		if err := s.AppendRound(ctx, store.RoundRecord{
			SessionID: result.SessionID,
			Round:     r.Round,
			Profile:   r.Profile.Key(),
			Belief:    encoded,
			Converged: r.Converged,
		}); err != nil {
			return err
		}
	}
	return nil
}
