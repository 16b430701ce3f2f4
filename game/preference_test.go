package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/internal/testutil"
	"github.com/posetal/posetal/order"
)

func TestPreferCostTime(t *testing.T) {
	g := testutil.CostTime(t)

	aa := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "A"})
	ab := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "B"})
	ba := testutil.MustProfile(t, g, map[string]string{"P1": "B", "P2": "A"})
	bb := testutil.MustProfile(t, g, map[string]string{"P1": "B", "P2": "B"})

	// (A, A) beats (B, B) on both metrics, so every priority order agrees.
	for _, pid := range []string{"P1", "P2"} {
		cmp, err := g.Prefer(pid, aa, bb)
		require.NoError(t, err)
		assert.Equal(t, order.Greater, cmp, "player %s", pid)
	}

	// (A, B) and (B, A) split the metrics: (B, A) wins cost, (A, B) wins
	// time. The cost-first player ranks (B, A) above, the time-first
	// player the reverse.
	cmp, err := g.Prefer("P1", ab, ba)
	require.NoError(t, err)
	assert.Equal(t, order.Less, cmp)

	cmp, err = g.Prefer("P2", ab, ba)
	require.NoError(t, err)
	assert.Equal(t, order.Greater, cmp)

	// Reflexivity.
	cmp, err = g.Prefer("P1", aa, aa)
	require.NoError(t, err)
	assert.Equal(t, order.Equal, cmp)
}

func TestPreferEqualVectors(t *testing.T) {
	g := testutil.Coordination(t)

	ab := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "B"})
	ba := testutil.MustProfile(t, g, map[string]string{"P1": "B", "P2": "A"})

	// Both mismatched profiles score (0, 0), so they are equivalent for
	// everyone even though the action assignments differ.
	for _, pid := range []string{"P1", "P2"} {
		cmp, err := g.Prefer(pid, ab, ba)
		require.NoError(t, err)
		assert.Equal(t, order.Equal, cmp, "player %s", pid)
	}
}

func TestPreferIncomparable(t *testing.T) {
	g := testutil.OpposedSingleChoice(t)

	ax := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "X"})
	bx := testutil.MustProfile(t, g, map[string]string{"P1": "B", "P2": "X"})

	// The two profiles trade m1 against m2 and P1's priority order relates
	// neither metric, so the comparison does not resolve.
	cmp, err := g.Prefer("P1", ax, bx)
	require.NoError(t, err)
	assert.Equal(t, order.Incomparable, cmp)

	cmp, err = g.Prefer("P1", bx, ax)
	require.NoError(t, err)
	assert.Equal(t, order.Incomparable, cmp)
}

func TestPreferErrors(t *testing.T) {
	g := testutil.Coordination(t)
	aa := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "A"})
	foreign := game.NewProfile(map[string]string{"P1": "A", "P2": "C"})

	_, err := g.Prefer("P3", aa, aa)
	require.Error(t, err)
	assert.True(t, game.IsInvalidGame(err))

	_, err = g.Prefer("P1", aa, foreign)
	require.Error(t, err)
	assert.True(t, game.IsInvalidGame(err))
}

func TestInducedPreorderIsOverProfileKeys(t *testing.T) {
	g := testutil.CostTime(t)

	pre, err := g.InducedPreorder("P1")
	require.NoError(t, err)
	assert.Equal(t, len(g.Profiles()), pre.Len())
	for _, p := range g.Profiles() {
		assert.True(t, pre.Contains(p.Key()))
	}

	_, err = g.InducedPreorder("nobody")
	require.Error(t, err)
}

func TestBestResponse(t *testing.T) {
	g := testutil.Coordination(t)

	fixedA := testutil.MustProfile(t, g, map[string]string{"P1": "B", "P2": "A"})
	best, err := g.BestResponse("P1", fixedA)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, best, "match the other player's A")

	fixedB := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "B"})
	best, err = g.BestResponse("P1", fixedB)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, best, "match the other player's B")
}

func TestBestResponseIncomparableTies(t *testing.T) {
	g := testutil.OpposedSingleChoice(t)

	fixed := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "X"})
	best, err := g.BestResponse("P1", fixed)
	require.NoError(t, err)

	// Neither variant dominates the other, so both actions are maximal.
	assert.Equal(t, []string{"A", "B"}, best)
}

func TestBestResponseErrors(t *testing.T) {
	g := testutil.Coordination(t)

	_, err := g.BestResponse("P3", testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "A"}))
	require.Error(t, err)
	assert.True(t, game.IsInvalidGame(err))

	_, err = g.BestResponse("P1", game.NewProfile(map[string]string{"P2": "C"}))
	require.Error(t, err)
	assert.True(t, game.IsInvalidGame(err))
}
