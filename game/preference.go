package game

import (
	"fmt"
	"slices"

	"github.com/posetal/posetal/order"
)

// inducedPreorder derives the player's pre-order over the given profiles
// from the metric table and the player's priority order.
func (g *Game) inducedPreorder(p Player, profiles []Profile) (*order.PreOrder, error) {
	keys := make([]string, len(profiles))
	for i, pr := range profiles {
		keys[i] = pr.Key()
	}
	var pairs []order.Pair
	for _, a := range profiles {
		for _, b := range profiles {
			if g.profileLeq(p, a, b) {
				pairs = append(pairs, order.Pair{Low: a.Key(), High: b.Key()})
			}
		}
	}
	return order.NewPreOrder(keys, pairs)
}

// profileLeq reports whether profile a is at most as good as profile b for
// the player: every metric where a beats b must sit strictly below, in the
// player's priority order, some metric where b beats a. When a beats b
// nowhere, b weakly dominates and the relation holds trivially.
func (g *Game) profileLeq(p Player, a, b Profile) bool {
	rowA := g.values[a.Key()]
	rowB := g.values[b.Key()]

	var aWins, bWins []string
	for _, name := range g.names {
		switch {
		case rowA[name] > rowB[name]:
			aWins = append(aWins, name)
		case rowA[name] < rowB[name]:
			bWins = append(bWins, name)
		}
	}

	for _, win := range aWins {
		dominated := false
		for _, loss := range bWins {
			if p.Preference.Less(win, loss) {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

// Prefer classifies two profiles for the player with the four-valued
// comparison of the induced pre-order. Incomparable is a normal outcome.
func (g *Game) Prefer(playerID string, a, b Profile) (order.Comparison, error) {
	pre, err := g.InducedPreorder(playerID)
	if err != nil {
		return order.Incomparable, err
	}
	if _, ok := g.byKey[a.Key()]; !ok {
		return order.Incomparable, &InvalidGameError{Reason: fmt.Sprintf("profile %s is not in this game's profile space", a)}
	}
	if _, ok := g.byKey[b.Key()]; !ok {
		return order.Incomparable, &InvalidGameError{Reason: fmt.Sprintf("profile %s is not in this game's profile space", b)}
	}
	return pre.Compare(a.Key(), b.Key()), nil
}

// BestResponse returns the player's best-response actions with the other
// players' actions fixed by the given profile: the actions appearing in
// maximal elements of the induced pre-order restricted to the player's
// unilateral variations. Ties are expected and returned sorted.
//
// The fixed profile must assign an action to every other player; an
// assignment for the player itself is ignored.
func (g *Game) BestResponse(playerID string, fixed Profile) ([]string, error) {
	player, ok := g.Player(playerID)
	if !ok {
		return nil, &InvalidGameError{PlayerID: playerID, Reason: "unknown player"}
	}

	allowed := make([]string, 0, len(player.Actions))
	for _, action := range player.Actions {
		variant := fixed.With(playerID, action)
		if _, ok := g.byKey[variant.Key()]; !ok {
			return nil, &InvalidGameError{Reason: fmt.Sprintf("profile %s is not in this game's profile space", variant)}
		}
		allowed = append(allowed, variant.Key())
	}

	pre, err := g.InducedPreorder(playerID)
	if err != nil {
		return nil, err
	}
	sub, err := pre.SubOrder(allowed)
	if err != nil {
		return nil, err
	}

	var best []string
	for _, key := range sub.MaximalElements(nil) {
		action, _ := g.byKey[key].Action(playerID)
		best = append(best, action)
	}
	slices.Sort(best)
	return slices.Compact(best), nil
}
