package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posetal/posetal/internal/store"
)

// NewTrajectoryCommand creates the trajectory command: dump a stored
// session's round log, or list sessions when no ID is given.
func NewTrajectoryCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "trajectory [session-id]",
		Short: "Inspect stored learning sessions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr(), Verbose: opts.Verbose}

			if dbPath == "" {
				return NewExitError(ExitCommandError, "--db is required")
			}
			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "opening database", err)
			}
			defer s.Close()

			ctx := cmd.Context()
			if len(args) == 0 {
				sessions, err := s.Sessions(ctx)
				if err != nil {
					return WrapExitError(ExitCommandError, "listing sessions", err)
				}
				if opts.Format == "json" {
					return out.Success(sessions)
				}
				var b strings.Builder
				fmt.Fprintf(&b, "%d sessions", len(sessions))
				for _, rec := range sessions {
					fmt.Fprintf(&b, "\n  %s player=%s mode=%s created=%s", rec.ID, rec.PlayerID, rec.Mode, rec.CreatedAt)
				}
				return out.Success(b.String())
			}

			header, rounds, err := s.Trajectory(ctx, args[0])
			if err != nil {
				if errors.Is(err, store.ErrSessionNotFound) {
					return WrapExitError(ExitFailure, "session not found", err)
				}
				return WrapExitError(ExitCommandError, "reading trajectory", err)
			}

			if opts.Format == "json" {
				return out.Success(map[string]any{
					"session": header,
					"rounds":  rounds,
				})
			}

			var b strings.Builder
			fmt.Fprintf(&b, "session %s player=%s mode=%s game=%s", header.ID, header.PlayerID, header.Mode, header.GameKey)
			for _, r := range rounds {
				flag := ""
				if r.Converged {
					flag = " (converged)"
				}
				fmt.Fprintf(&b, "\n  round %d: %s belief=%s%s", r.Round, r.Profile, r.Belief, flag)
			}
			return out.Success(b.String())
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database holding the session log")
	return cmd
}
