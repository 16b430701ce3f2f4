// Package testutil provides deterministic game fixtures shared by the core
// package tests: the two-player coordination game and the cost/time game
// with opposed priorities.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/order"
)

// PairMetric builds a metric over a two-player game from an explicit value
// table keyed by the two players' actions. Higher values are better.
func PairMetric(name, firstPlayer, secondPlayer string, table map[[2]string]float64) game.Metric {
	return game.Metric{
		Name: name,
		Outcome: func(p game.Profile) float64 {
			a, _ := p.Action(firstPlayer)
			b, _ := p.Action(secondPlayer)
			return table[[2]string{a, b}]
		},
	}
}

// Chain builds the total order low < high over exactly two metric names.
func Chain(t *testing.T, low, high string) *order.PartialOrder {
	t.Helper()
	po, err := order.NewPartialOrder([]string{low, high}, []order.Pair{{Low: low, High: high}})
	require.NoError(t, err)
	return po
}

// Incomparable builds the two-element antichain over the metric names.
func Incomparable(t *testing.T, names ...string) *order.PartialOrder {
	t.Helper()
	po, err := order.Antichain(names)
	require.NoError(t, err)
	return po
}

// Coordination builds the two-player coordination game: both players score 1
// on their own payoff metric when the actions match and 0 otherwise, and
// each player prioritizes their own payoff over the other's.
func Coordination(t *testing.T) *game.Game {
	t.Helper()

	match := map[[2]string]float64{
		{"A", "A"}: 1, {"B", "B"}: 1,
		{"A", "B"}: 0, {"B", "A"}: 0,
	}
	metrics := []game.Metric{
		PairMetric("p1_payoff", "P1", "P2", match),
		PairMetric("p2_payoff", "P1", "P2", match),
	}
	players := []game.Player{
		{ID: "P1", Actions: []string{"A", "B"}, Preference: Chain(t, "p2_payoff", "p1_payoff")},
		{ID: "P2", Actions: []string{"A", "B"}, Preference: Chain(t, "p1_payoff", "p2_payoff")},
	}

	g, err := game.New(players, metrics)
	require.NoError(t, err)
	return g
}

// CostTime builds the spec's cost/time game: player 1 strictly prioritizes
// cost, player 2 strictly prioritizes time, and the profile (A, A) is
// simultaneously best on both metrics. Values are scores, higher is better.
func CostTime(t *testing.T) *game.Game {
	t.Helper()

	cost := map[[2]string]float64{
		{"A", "A"}: 3, {"A", "B"}: 1, {"B", "A"}: 2, {"B", "B"}: 0,
	}
	time := map[[2]string]float64{
		{"A", "A"}: 3, {"A", "B"}: 2, {"B", "A"}: 1, {"B", "B"}: 0,
	}
	metrics := []game.Metric{
		PairMetric("cost", "P1", "P2", cost),
		PairMetric("time", "P1", "P2", time),
	}
	players := []game.Player{
		{ID: "P1", Actions: []string{"A", "B"}, Preference: Chain(t, "time", "cost")},
		{ID: "P2", Actions: []string{"A", "B"}, Preference: Chain(t, "cost", "time")},
	}

	g, err := game.New(players, metrics)
	require.NoError(t, err)
	return g
}

// Battle builds a battle-of-the-sexes style game: coordinating on A scores
// (cost 2, time 1), coordinating on B scores (cost 1, time 2), mismatching
// scores zero on both. Both coordination profiles resist unilateral
// deviation, so which of them survives the dominance filter depends
// entirely on the players' priority orders. True preferences: P1 puts cost
// on top, P2 puts time on top.
func Battle(t *testing.T) *game.Game {
	t.Helper()

	cost := map[[2]string]float64{
		{"A", "A"}: 2, {"B", "B"}: 1, {"A", "B"}: 0, {"B", "A"}: 0,
	}
	time := map[[2]string]float64{
		{"A", "A"}: 1, {"B", "B"}: 2, {"A", "B"}: 0, {"B", "A"}: 0,
	}
	metrics := []game.Metric{
		PairMetric("cost", "P1", "P2", cost),
		PairMetric("time", "P1", "P2", time),
	}
	players := []game.Player{
		{ID: "P1", Actions: []string{"A", "B"}, Preference: Chain(t, "time", "cost")},
		{ID: "P2", Actions: []string{"A", "B"}, Preference: Chain(t, "cost", "time")},
	}

	g, err := game.New(players, metrics)
	require.NoError(t, err)
	return g
}

// OpposedSingleChoice builds a game in which a lone mover faces two profiles
// that differ on two metrics in opposite directions while the second player
// has one action. With an antichain priority order the two profiles are
// incomparable for P1.
func OpposedSingleChoice(t *testing.T) *game.Game {
	t.Helper()

	m1 := map[[2]string]float64{
		{"A", "X"}: 1, {"B", "X"}: 0,
	}
	m2 := map[[2]string]float64{
		{"A", "X"}: 0, {"B", "X"}: 1,
	}
	metrics := []game.Metric{
		PairMetric("m1", "P1", "P2", m1),
		PairMetric("m2", "P1", "P2", m2),
	}
	players := []game.Player{
		{ID: "P1", Actions: []string{"A", "B"}, Preference: Incomparable(t, "m1", "m2")},
		{ID: "P2", Actions: []string{"X"}, Preference: Incomparable(t, "m1", "m2")},
	}

	g, err := game.New(players, metrics)
	require.NoError(t, err)
	return g
}

// MustProfile builds a profile and asserts it belongs to the game.
func MustProfile(t *testing.T, g *game.Game, actions map[string]string) game.Profile {
	t.Helper()
	p := NewProfileOf(g, actions)
	_, err := g.Evaluate(p)
	require.NoError(t, err)
	return p
}

// NewProfileOf builds a profile without validation; kept separate so error
// paths can be exercised.
func NewProfileOf(_ *game.Game, actions map[string]string) game.Profile {
	return game.NewProfile(actions)
}
