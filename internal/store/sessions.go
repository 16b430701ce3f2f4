package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID has no row.
var ErrSessionNotFound = errors.New("session not found")

// SessionRecord is one learning session's header row.
type SessionRecord struct {
	ID        string
	GameKey   string
	PlayerID  string
	Mode      string
	CreatedAt string
}

// RoundRecord is one observation: the profile seen and the belief snapshot
// after folding it in. Profile is the canonical profile key; Belief is the
// encoded snapshot (see EncodeBelief).
type RoundRecord struct {
	SessionID string
	Round     int
	Profile   string
	Belief    string
	Converged bool
}

// CreateSession inserts the session header row.
func (s *Store) CreateSession(ctx context.Context, rec SessionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, game_key, player_id, mode) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.GameKey, rec.PlayerID, rec.Mode,
	)
	if err != nil {
		return fmt.Errorf("create session %s: %w", rec.ID, err)
	}
	return nil
}

// AppendRound appends one round to a session's log. Round numbers start at
// 1 and the (session, round) pair is unique; re-appending a round fails.
func (s *Store) AppendRound(ctx context.Context, rec RoundRecord) error {
	converged := 0
	if rec.Converged {
		converged = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (session_id, round_no, profile, belief, converged)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Round, rec.Profile, rec.Belief, converged,
	)
	if err != nil {
		return fmt.Errorf("append round %d to session %s: %w", rec.Round, rec.SessionID, err)
	}
	return nil
}

// Session reads one session header.
func (s *Store) Session(ctx context.Context, id string) (SessionRecord, error) {
	var rec SessionRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, game_key, player_id, mode, created_at FROM sessions WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.GameKey, &rec.PlayerID, &rec.Mode, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("read session %s: %w", id, err)
	}
	return rec, nil
}

// Sessions lists all session headers, newest last.
func (s *Store) Sessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_key, player_id, mode, created_at FROM sessions ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.GameKey, &rec.PlayerID, &rec.Mode, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Trajectory reads a session's full round log in round order.
func (s *Store) Trajectory(ctx context.Context, sessionID string) (SessionRecord, []RoundRecord, error) {
	header, err := s.Session(ctx, sessionID)
	if err != nil {
		return SessionRecord{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, round_no, profile, belief, converged
		 FROM rounds WHERE session_id = ? ORDER BY round_no ASC`,
		sessionID,
	)
	if err != nil {
		return SessionRecord{}, nil, fmt.Errorf("read trajectory %s: %w", sessionID, err)
	}
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		var converged int
		if err := rows.Scan(&rec.SessionID, &rec.Round, &rec.Profile, &rec.Belief, &converged); err != nil {
			return SessionRecord{}, nil, fmt.Errorf("scan round: %w", err)
		}
		rec.Converged = converged != 0
		rounds = append(rounds, rec)
	}
	return header, rounds, rows.Err()
}
