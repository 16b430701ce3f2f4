package learning

import (
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/internal/canon"
	"github.com/posetal/posetal/nash"
	"github.com/posetal/posetal/order"
)

// Algorithm selects how a player turns beliefs about the others into an
// action distribution.
type Algorithm int

const (
	// VoteProbability weighs each action by the summed joint belief mass
	// of the opponent preference profiles whose equilibria contain it.
	VoteProbability Algorithm = iota

	// VoteMax weighs each action by the single heaviest such profile.
	VoteMax
)

func (a Algorithm) String() string {
	switch a {
	case VoteProbability:
		return "vote-probability"
	case VoteMax:
		return "vote-max"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps the textual algorithm names used by scenario files.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "vote-probability":
		return VoteProbability, nil
	case "vote-max":
		return VoteMax, nil
	default:
		return 0, fmt.Errorf("unknown learning algorithm %q", s)
	}
}

// FrameworkOptions carries optional framework configuration.
type FrameworkOptions struct {
	// Seed drives all random draws. Equal seeds over equal inputs yield
	// identical trajectories.
	Seed uint64
}

// Framework runs simultaneous multi-agent preference learning: every round
// each player samples an action from their voting distribution under the
// current public beliefs, then every belief is updated against the joint
// action actually played.
type Framework struct {
	g          *game.Game
	algorithms map[string]Algorithm
	beliefs    map[string]*Belief
	beliefHist []map[string]*Belief
	actionHist []game.Profile
	src        rand.Source

	// admissible undominated equilibria by preference-profile key
	cache map[string][]game.Profile
}

// NewFramework builds a framework over the game. Priors and algorithms must
// cover every player; candidate orders must range over the game's metric
// names.
func NewFramework(g *game.Game, priors map[string]*Belief, algorithms map[string]Algorithm, opts *FrameworkOptions) (*Framework, error) {
	names := g.MetricNames()
	for _, pl := range g.Players() {
		prior, ok := priors[pl.ID]
		if !ok {
			return nil, &InvalidBeliefError{Reason: fmt.Sprintf("no prior belief for player %q", pl.ID)}
		}
		for _, c := range prior.Candidates() {
			if !slices.Equal(c.Elements(), names) {
				return nil, &InvalidBeliefError{Reason: fmt.Sprintf("candidate order for player %q is not over the game's metric names", pl.ID)}
			}
		}
		if _, ok := algorithms[pl.ID]; !ok {
			return nil, fmt.Errorf("no learning algorithm for player %q", pl.ID)
		}
	}
	if len(priors) != len(g.Players()) {
		return nil, &InvalidBeliefError{Reason: "prior belief for unknown player"}
	}

	var seed uint64
	if opts != nil {
		seed = opts.Seed
	}
	beliefs := make(map[string]*Belief, len(priors))
	algs := make(map[string]Algorithm, len(algorithms))
	for _, pl := range g.Players() {
		beliefs[pl.ID] = priors[pl.ID]
		algs[pl.ID] = algorithms[pl.ID]
	}

	return &Framework{
		g:          g,
		algorithms: algs,
		beliefs:    beliefs,
		beliefHist: []map[string]*Belief{cloneBeliefMap(beliefs)},
		src:        rand.NewSource(seed),
		cache:      make(map[string][]game.Profile),
	}, nil
}

func cloneBeliefMap(m map[string]*Belief) map[string]*Belief {
	out := make(map[string]*Belief, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// profileKey derives the cache key for a full preference assignment.
func (f *Framework) profileKey(prefs map[string]*order.PartialOrder) (string, error) {
	byID := make(map[string]any, len(prefs))
	for pid, p := range prefs {
		byID[pid] = p.Key()
	}
	return canon.Key(canon.DomainPreferences, map[string]any{
		"game":  f.g.Key(),
		"prefs": byID,
	})
}

// equilibria returns the admissible undominated profiles of the game with
// the given full preference assignment substituted in.
func (f *Framework) equilibria(prefs map[string]*order.PartialOrder) ([]game.Profile, error) {
	key, err := f.profileKey(prefs)
	if err != nil {
		return nil, err
	}
	if cached, ok := f.cache[key]; ok {
		return cached, nil
	}
	substituted, err := f.g.WithPreferences(prefs)
	if err != nil {
		return nil, err
	}
	eqs, err := nash.FindAdmissibleUndominated(substituted)
	if err != nil {
		return nil, err
	}
	f.cache[key] = eqs
	return eqs, nil
}

// ActionDistribution computes the voting distribution over the player's
// actions, assuming the player holds the given priority order and the
// given beliefs about everyone else. With no other players the distribution
// is uniform.
func (f *Framework) ActionDistribution(playerID string, pref *order.PartialOrder, others map[string]*Belief) (map[string]float64, error) {
	player, ok := f.g.Player(playerID)
	if !ok {
		return nil, &game.InvalidGameError{PlayerID: playerID, Reason: "unknown player"}
	}
	alg := f.algorithms[playerID]

	otherIDs := make([]string, 0, len(others))
	for pid := range others {
		if pid != playerID {
			otherIDs = append(otherIDs, pid)
		}
	}
	slices.Sort(otherIDs)

	weights := make(map[string]float64, len(player.Actions))
	for _, a := range player.Actions {
		weights[a] = 0
	}
	if len(otherIDs) == 0 {
		return uniformOver(player.Actions), nil
	}

	candidates := make([][]*order.PartialOrder, len(otherIDs))
	for i, pid := range otherIDs {
		candidates[i] = others[pid].Candidates()
	}

	combo := make(map[string]*order.PartialOrder, len(otherIDs)+1)
	combo[playerID] = pref
	var walk func(i int, joint float64) error
	walk = func(i int, joint float64) error {
		if i == len(otherIDs) {
			eqs, err := f.equilibria(combo)
			if err != nil {
				return err
			}
			for _, a := range player.Actions {
				hit := false
				for _, eq := range eqs {
					if ea, _ := eq.Action(playerID); ea == a {
						hit = true
						break
					}
				}
				if !hit {
					continue
				}
				switch alg {
				case VoteMax:
					if joint > weights[a] {
						weights[a] = joint
					}
				default:
					weights[a] += joint
				}
			}
			return nil
		}
		pid := otherIDs[i]
		for _, c := range candidates[i] {
			combo[pid] = c
			if err := walk(i+1, joint*others[pid].Weight(c)); err != nil {
				return err
			}
		}
		delete(combo, pid)
		return nil
	}
	if err := walk(0, 1); err != nil {
		return nil, err
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		slog.Warn("no admissible equilibria under any candidate profile, voting uniformly",
			"player", playerID)
		return uniformOver(player.Actions), nil
	}
	for a := range weights {
		weights[a] /= total
	}
	return weights, nil
}

func uniformOver(actions []string) map[string]float64 {
	out := make(map[string]float64, len(actions))
	for _, a := range actions {
		out[a] = 1.0 / float64(len(actions))
	}
	return out
}

// sampleAction draws one action, actions in their sorted game order so the
// draw is reproducible for a fixed seed.
func (f *Framework) sampleAction(actions []string, dist map[string]float64) string {
	w := make([]float64, len(actions))
	for i, a := range actions {
		w[i] = dist[a]
	}
	idx, ok := sampleuv.NewWeighted(w, f.src).Take()
	if !ok {
		idx = 0
	}
	return actions[idx]
}

// othersView returns the current beliefs about everyone but the player.
func (f *Framework) othersView(playerID string) map[string]*Belief {
	out := make(map[string]*Belief, len(f.beliefs))
	for pid, b := range f.beliefs {
		if pid != playerID {
			out[pid] = b
		}
	}
	return out
}

// RunRound plays one simultaneous round: every player samples an action
// using their true priority order and the current beliefs about the others,
// then every player's public belief is updated by the likelihood of the
// action they actually played under each candidate.
func (f *Framework) RunRound() (game.Profile, error) {
	chosen := make(map[string]string, len(f.g.Players()))
	for _, pl := range f.g.Players() {
		dist, err := f.ActionDistribution(pl.ID, pl.Preference, f.othersView(pl.ID))
		if err != nil {
			return game.Profile{}, err
		}
		chosen[pl.ID] = f.sampleAction(pl.Actions, dist)
	}
	played := game.NewProfile(chosen)

	next := make(map[string]*Belief, len(f.beliefs))
	for _, pl := range f.g.Players() {
		prior := f.beliefs[pl.ID]
		others := f.othersView(pl.ID)
		likelihoods := make(map[string]float64, prior.Len())
		for _, c := range prior.Candidates() {
			dist, err := f.ActionDistribution(pl.ID, c, others)
			if err != nil {
				return game.Profile{}, err
			}
			likelihoods[c.Key()] = dist[chosen[pl.ID]]
		}
		updated, err := Update(prior, likelihoods)
		if err != nil {
			if IsZeroMass(err) {
				return game.Profile{}, &ZeroMassError{PlayerID: pl.ID}
			}
			return game.Profile{}, err
		}
		next[pl.ID] = updated
	}

	f.beliefs = next
	f.beliefHist = append(f.beliefHist, cloneBeliefMap(next))
	f.actionHist = append(f.actionHist, played)
	return played, nil
}

// Run plays n rounds and returns the action trajectory.
func (f *Framework) Run(n int) ([]game.Profile, error) {
	out := make([]game.Profile, 0, n)
	for i := 0; i < n; i++ {
		p, err := f.RunRound()
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Beliefs returns the current public beliefs, one per player.
func (f *Framework) Beliefs() map[string]*Belief { return cloneBeliefMap(f.beliefs) }

// BeliefHistory returns the belief snapshots, index 0 being the priors.
func (f *Framework) BeliefHistory() []map[string]*Belief {
	out := make([]map[string]*Belief, len(f.beliefHist))
	for i, m := range f.beliefHist {
		out[i] = cloneBeliefMap(m)
	}
	return out
}

// ActionHistory returns the profiles played so far.
func (f *Framework) ActionHistory() []game.Profile {
	return slices.Clone(f.actionHist)
}

// ConvergedPreferences returns each player's current arg-max candidate set.
func (f *Framework) ConvergedPreferences() map[string][]*order.PartialOrder {
	out := make(map[string][]*order.PartialOrder, len(f.beliefs))
	for pid, b := range f.beliefs {
		out[pid] = b.MostLikely()
	}
	return out
}
