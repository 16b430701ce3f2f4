package harness

import (
	"fmt"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/internal/gamespec"
	"github.com/posetal/posetal/learning"
	"github.com/posetal/posetal/nash"
	"github.com/posetal/posetal/order"
)

// Result captures a full scenario run: the compiled game, the candidate
// orders in scenario order, and the belief trajectory.
type Result struct {
	SessionID  string
	Game       *game.Game
	Candidates []*order.PartialOrder

	// Prior holds the initial weights by candidate index.
	Prior []float64

	// Rounds holds one entry per observed round.
	Rounds []RoundResult
}

// RoundResult is the belief state after folding in one observation.
type RoundResult struct {
	Round     int
	Profile   game.Profile
	Weights   []float64 // by candidate index
	Converged bool
}

// Final returns the last round's weights, or the prior when no rounds ran.
func (r *Result) Final() []float64 {
	if len(r.Rounds) == 0 {
		return r.Prior
	}
	return r.Rounds[len(r.Rounds)-1].Weights
}

// Run replays a scenario's rounds through a learning session and records
// the belief trajectory.
func Run(scenario *Scenario) (*Result, error) {
	g, err := gamespec.Load(scenario.Game)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	metrics := g.MetricNames()
	candidates := make([]*order.PartialOrder, len(scenario.Candidates))
	for i, pairLists := range scenario.Candidates {
		pairs := make([]order.Pair, len(pairLists))
		for j, p := range pairLists {
			pairs[j] = order.Pair{Low: p[0], High: p[1]}
		}
		c, err := order.NewPartialOrder(metrics, pairs)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: candidate %d: %w", scenario.Name, i, err)
		}
		candidates[i] = c
	}

	mode, err := learning.ParseMode(scenario.Mode)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	session, err := learning.NewSession(g, scenario.Player, candidates, mode, nil)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := &Result{
		SessionID:  session.ID(),
		Game:       g,
		Candidates: candidates,
		Prior:      weightsByIndex(session.Belief(), candidates),
	}

	for i, actions := range scenario.Rounds {
		profile := game.NewProfile(actions)
		if err := session.Observe(profile); err != nil {
			return nil, fmt.Errorf("scenario %s: round %d: %w", scenario.Name, i+1, err)
		}
		result.Rounds = append(result.Rounds, RoundResult{
			Round:     i + 1,
			Profile:   profile,
			Weights:   weightsByIndex(session.Belief(), candidates),
			Converged: session.Converged(scenario.Threshold),
		})
	}
	return result, nil
}

// weightsByIndex projects the belief onto the scenario's candidate order.
func weightsByIndex(b *learning.Belief, candidates []*order.PartialOrder) []float64 {
	out := make([]float64, len(candidates))
	for i, c := range candidates {
		out[i] = b.Weight(c)
	}
	return out
}

// Verify checks every assertion against the result. All assertions run;
// the first failure is reported with its index.
func Verify(scenario *Scenario, result *Result) error {
	for i, a := range scenario.Assertions {
		if err := verifyAssertion(&a, result); err != nil {
			return fmt.Errorf("scenario %s: assertions[%d] (%s): %w", scenario.Name, i, a.Type, err)
		}
	}
	return nil
}

func verifyAssertion(a *Assertion, result *Result) error {
	switch a.Type {
	case AssertEquilibria:
		eqs, err := nash.FindAdmissibleUndominated(result.Game)
		if err != nil {
			return err
		}
		got := make([]string, len(eqs))
		for i, eq := range eqs {
			got[i] = eq.String()
		}
		if len(got) != len(a.Profiles) {
			return fmt.Errorf("expected equilibria %v, got %v", a.Profiles, got)
		}
		for i := range got {
			if got[i] != a.Profiles[i] {
				return fmt.Errorf("expected equilibria %v, got %v", a.Profiles, got)
			}
		}
	case AssertMostLikely:
		final := result.Final()
		max := final[0]
		for _, w := range final {
			if w > max {
				max = w
			}
		}
		var got []int
		for i, w := range final {
			if w == max {
				got = append(got, i)
			}
		}
		if len(got) != len(a.Candidates) {
			return fmt.Errorf("expected arg-max candidates %v, got %v", a.Candidates, got)
		}
		for i := range got {
			if got[i] != a.Candidates[i] {
				return fmt.Errorf("expected arg-max candidates %v, got %v", a.Candidates, got)
			}
		}
	case AssertMinWeight:
		w := result.Final()[a.Candidate]
		if w < a.Weight {
			return fmt.Errorf("candidate %d has final weight %.9f, want at least %.9f", a.Candidate, w, a.Weight)
		}
	case AssertConverged:
		converged := false
		if len(result.Rounds) > 0 {
			converged = result.Rounds[len(result.Rounds)-1].Converged
		}
		if converged != a.Value {
			return fmt.Errorf("converged = %v, want %v", converged, a.Value)
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
