package learning

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/nash"
	"github.com/posetal/posetal/order"
)

// Mode selects how a session folds a round's consistency scores into the
// belief.
type Mode int

const (
	// ModeProbability multiplies prior mass by the consistency score and
	// renormalizes.
	ModeProbability Mode = iota

	// ModeMax moves all mass onto the consistent candidates, split
	// evenly.
	ModeMax
)

func (m Mode) String() string {
	switch m {
	case ModeProbability:
		return "probability"
	case ModeMax:
		return "max"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the textual mode names used by scenario files and the CLI.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "probability":
		return ModeProbability, nil
	case "max":
		return ModeMax, nil
	default:
		return 0, fmt.Errorf("unknown learning mode %q", s)
	}
}

// SessionOptions carries optional session configuration.
type SessionOptions struct {
	// Prior replaces the uniform prior over the candidates. When set,
	// the candidate list passed to NewSession must be nil; the prior
	// defines the candidate set.
	Prior *Belief
}

// Session observes one player of a fixed game and maintains a belief over
// that player's priority order.
type Session struct {
	id       string
	g        *game.Game
	playerID string
	mode     Mode
	belief   *Belief
	rounds   int

	// equilibria of the game with a candidate substituted for the
	// observed player, by candidate key
	cache map[string][]game.Profile
}

// NewSession builds a session observing playerID with a uniform prior over
// the candidate orders, or with opts.Prior when given. Candidates must be
// partial orders over the game's metric names.
func NewSession(g *game.Game, playerID string, candidates []*order.PartialOrder, mode Mode, opts *SessionOptions) (*Session, error) {
	if _, ok := g.Player(playerID); !ok {
		return nil, &game.InvalidGameError{PlayerID: playerID, Reason: "unknown player"}
	}
	if mode != ModeProbability && mode != ModeMax {
		return nil, fmt.Errorf("unknown learning mode %d", int(mode))
	}

	var belief *Belief
	var err error
	switch {
	case opts != nil && opts.Prior != nil:
		if candidates != nil {
			return nil, &InvalidBeliefError{Reason: "provide either candidates or a prior, not both"}
		}
		belief = opts.Prior
	default:
		belief, err = Uniform(candidates)
		if err != nil {
			return nil, err
		}
	}

	names := g.MetricNames()
	for _, c := range belief.Candidates() {
		if !slices.Equal(c.Elements(), names) {
			return nil, &InvalidBeliefError{Reason: "candidate order is not over the game's metric names"}
		}
	}

	return &Session{
		id:       uuid.NewString(),
		g:        g,
		playerID: playerID,
		mode:     mode,
		belief:   belief,
		cache:    make(map[string][]game.Profile),
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// PlayerID returns the observed player.
func (s *Session) PlayerID() string { return s.playerID }

// Mode returns the session's update mode.
func (s *Session) Mode() Mode { return s.mode }

// Game returns the game under observation.
func (s *Session) Game() *game.Game { return s.g }

// Rounds returns the number of observations folded in so far.
func (s *Session) Rounds() int { return s.rounds }

// Belief returns a snapshot of the current belief. Beliefs are immutable,
// so the snapshot stays valid across later observations.
func (s *Session) Belief() *Belief { return s.belief }

// MostLikely returns the current arg-max candidate set.
func (s *Session) MostLikely() []*order.PartialOrder { return s.belief.MostLikely() }

// Converged reports whether some candidate's mass has reached the
// threshold.
func (s *Session) Converged(threshold float64) bool {
	for _, k := range s.belief.keys {
		if s.belief.weights[k] >= threshold {
			return true
		}
	}
	return false
}

// equilibria returns the admissible undominated profiles of the game with
// the candidate substituted as the observed player's priority order.
func (s *Session) equilibria(c *order.PartialOrder) ([]game.Profile, error) {
	if cached, ok := s.cache[c.Key()]; ok {
		return cached, nil
	}
	substituted, err := s.g.WithPreferences(map[string]*order.PartialOrder{s.playerID: c})
	if err != nil {
		return nil, err
	}
	eqs, err := nash.FindAdmissibleUndominated(substituted)
	if err != nil {
		return nil, err
	}
	s.cache[c.Key()] = eqs
	return eqs, nil
}

// Observe folds one observed joint action profile into the belief. A
// candidate is consistent when the observed player's action appears in some
// admissible undominated equilibrium under that candidate. A round in which
// no candidate is consistent carries no signal and leaves the belief
// unchanged.
func (s *Session) Observe(p game.Profile) error {
	if _, err := s.g.Evaluate(p); err != nil {
		return err
	}
	observed, _ := p.Action(s.playerID)

	scores := make(map[string]float64, s.belief.Len())
	var consistent []string
	for _, c := range s.belief.Candidates() {
		eqs, err := s.equilibria(c)
		if err != nil {
			return err
		}
		k := c.Key()
		scores[k] = 0
		for _, eq := range eqs {
			if a, _ := eq.Action(s.playerID); a == observed {
				scores[k] = 1
				consistent = append(consistent, k)
				break
			}
		}
	}

	if len(consistent) == 0 {
		slog.Debug("observation consistent with no candidate, belief unchanged",
			"session", s.id, "player", s.playerID, "round", s.rounds+1)
		s.rounds++
		return nil
	}

	switch s.mode {
	case ModeProbability:
		next, err := Update(s.belief, scores)
		if err != nil {
			return err
		}
		s.belief = next
	case ModeMax:
		// Keep only consistent candidates the belief has not already
		// ruled out; a round contradicting everything still alive
		// carries no signal.
		alive := make(map[string]float64, len(consistent))
		for _, k := range consistent {
			if s.belief.weights[k] > 0 {
				alive[k] = 1
			}
		}
		if len(alive) > 0 {
			s.belief = normalized(s.belief.keys, s.belief.orders, withZeros(s.belief.keys, alive))
		}
	}
	s.rounds++
	return nil
}

// withZeros extends a sparse weight map to the full key list.
func withZeros(keys []string, sparse map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(keys))
	for _, k := range keys {
		out[k] = sparse[k]
	}
	return out
}
