package nash

import (
	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/order"
)

// IsPureNash reports whether the profile survives the strict deviation test:
// every player weakly prefers it to each of their unilateral deviations. A
// deviation the player ranks as incomparable fails the test.
func IsPureNash(g *game.Game, p game.Profile) (bool, error) {
	return holdsForAllDeviations(g, p, func(cmp order.Comparison) bool {
		return cmp == order.Greater || cmp == order.Equal
	})
}

// IsAdmissible reports whether no player strictly prefers any unilateral
// deviation. Incomparable deviations do not disqualify the profile.
func IsAdmissible(g *game.Game, p game.Profile) (bool, error) {
	return holdsForAllDeviations(g, p, func(cmp order.Comparison) bool {
		return cmp != order.Less
	})
}

// holdsForAllDeviations checks accept(Prefer(player, p, deviation)) for every
// player and every unilateral deviation, short-circuiting on the first
// failure.
func holdsForAllDeviations(g *game.Game, p game.Profile, accept func(order.Comparison) bool) (bool, error) {
	if _, err := g.Evaluate(p); err != nil {
		return false, err
	}
	for _, pl := range g.Players() {
		current, _ := p.Action(pl.ID)
		for _, a := range pl.Actions {
			if a == current {
				continue
			}
			cmp, err := g.Prefer(pl.ID, p, p.With(pl.ID, a))
			if err != nil {
				return false, err
			}
			if !accept(cmp) {
				return false, nil
			}
		}
	}
	return true, nil
}

// FindPureNash returns every profile passing IsPureNash, in the game's
// profile enumeration order.
func FindPureNash(g *game.Game) ([]game.Profile, error) {
	return filterProfiles(g, IsPureNash)
}

// FindAdmissible returns every profile passing IsAdmissible, in the game's
// profile enumeration order.
func FindAdmissible(g *game.Game) ([]game.Profile, error) {
	return filterProfiles(g, IsAdmissible)
}

func filterProfiles(g *game.Game, keep func(*game.Game, game.Profile) (bool, error)) ([]game.Profile, error) {
	var out []game.Profile
	for _, p := range g.Profiles() {
		ok, err := keep(g, p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Dominates reports whether profile a dominates profile b: every player
// weakly prefers a to b and at least one player strictly does.
func Dominates(g *game.Game, a, b game.Profile) (bool, error) {
	strict := false
	for _, pl := range g.Players() {
		cmp, err := g.Prefer(pl.ID, b, a)
		if err != nil {
			return false, err
		}
		switch cmp {
		case order.Less:
			strict = true
		case order.Equal:
		default:
			return false, nil
		}
	}
	return strict, nil
}

// Undominated removes from the given profiles every member dominated by
// another member. Input order is preserved for the survivors.
func Undominated(g *game.Game, profiles []game.Profile) ([]game.Profile, error) {
	var out []game.Profile
	for _, p := range profiles {
		dominated := false
		for _, q := range profiles {
			if q.Key() == p.Key() {
				continue
			}
			dom, err := Dominates(g, q, p)
			if err != nil {
				return nil, err
			}
			if dom {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindAdmissibleUndominated returns the admissible profiles that no other
// admissible profile dominates.
func FindAdmissibleUndominated(g *game.Game) ([]game.Profile, error) {
	admissible, err := FindAdmissible(g)
	if err != nil {
		return nil, err
	}
	return Undominated(g, admissible)
}
