package nash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/internal/testutil"
	"github.com/posetal/posetal/nash"
)

func keys(profiles []game.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.String()
	}
	return out
}

// rankedCoordination scales the coordination game so that matching on A pays
// strictly more than matching on B for both players.
func rankedCoordination(t *testing.T) *game.Game {
	t.Helper()

	p1 := map[[2]string]float64{
		{"A", "A"}: 2, {"B", "B"}: 1, {"A", "B"}: 0, {"B", "A"}: 0,
	}
	p2 := map[[2]string]float64{
		{"A", "A"}: 2, {"B", "B"}: 1, {"A", "B"}: 0, {"B", "A"}: 0,
	}
	metrics := []game.Metric{
		testutil.PairMetric("p1_payoff", "P1", "P2", p1),
		testutil.PairMetric("p2_payoff", "P1", "P2", p2),
	}
	players := []game.Player{
		{ID: "P1", Actions: []string{"A", "B"}, Preference: testutil.Chain(t, "p2_payoff", "p1_payoff")},
		{ID: "P2", Actions: []string{"A", "B"}, Preference: testutil.Chain(t, "p1_payoff", "p2_payoff")},
	}
	g, err := game.New(players, metrics)
	require.NoError(t, err)
	return g
}

func TestFindPureNashCoordination(t *testing.T) {
	g := testutil.Coordination(t)

	pure, err := nash.FindPureNash(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1=A P2=A", "P1=B P2=B"}, keys(pure))

	// With total priority orders every deviation resolves, so the
	// permissive concept agrees.
	admissible, err := nash.FindAdmissible(g)
	require.NoError(t, err)
	assert.Equal(t, keys(pure), keys(admissible))
}

func TestFindPureNashCostTime(t *testing.T) {
	g := testutil.CostTime(t)

	pure, err := nash.FindPureNash(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1=A P2=A"}, keys(pure))
}

func TestIncomparableDeviationSeparatesConcepts(t *testing.T) {
	g := testutil.OpposedSingleChoice(t)

	// P1's two variants are incomparable under the antichain priority
	// order. The strict concept rejects both profiles; the permissive one
	// accepts both.
	pure, err := nash.FindPureNash(g)
	require.NoError(t, err)
	assert.Empty(t, pure)

	admissible, err := nash.FindAdmissible(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1=A P2=X", "P1=B P2=X"}, keys(admissible))

	ax := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "X"})
	ok, err := nash.IsPureNash(g, ax)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = nash.IsAdmissible(g, ax)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPureNashIsSubsetOfAdmissible(t *testing.T) {
	for name, g := range map[string]*game.Game{
		"coordination": testutil.Coordination(t),
		"cost_time":    testutil.CostTime(t),
		"opposed":      testutil.OpposedSingleChoice(t),
	} {
		pure, err := nash.FindPureNash(g)
		require.NoError(t, err, name)
		for _, p := range pure {
			ok, err := nash.IsAdmissible(g, p)
			require.NoError(t, err, name)
			assert.True(t, ok, "%s: %s", name, p)
		}
	}
}

func TestDominates(t *testing.T) {
	g := rankedCoordination(t)
	aa := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "A"})
	bb := testutil.MustProfile(t, g, map[string]string{"P1": "B", "P2": "B"})

	dom, err := nash.Dominates(g, aa, bb)
	require.NoError(t, err)
	assert.True(t, dom, "matching on A pays more for everyone")

	dom, err = nash.Dominates(g, bb, aa)
	require.NoError(t, err)
	assert.False(t, dom)

	// Equal outcome vectors dominate in neither direction.
	flat := testutil.Coordination(t)
	faa := testutil.MustProfile(t, flat, map[string]string{"P1": "A", "P2": "A"})
	fbb := testutil.MustProfile(t, flat, map[string]string{"P1": "B", "P2": "B"})
	dom, err = nash.Dominates(flat, faa, fbb)
	require.NoError(t, err)
	assert.False(t, dom)
}

func TestFindAdmissibleUndominated(t *testing.T) {
	g := rankedCoordination(t)

	admissible, err := nash.FindAdmissible(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1=A P2=A", "P1=B P2=B"}, keys(admissible))

	filtered, err := nash.FindAdmissibleUndominated(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1=A P2=A"}, keys(filtered))

	// Equal-payoff equilibria survive the filter together.
	flat := testutil.Coordination(t)
	both, err := nash.FindAdmissibleUndominated(flat)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1=A P2=A", "P1=B P2=B"}, keys(both))
}

func TestFinderErrors(t *testing.T) {
	g := testutil.Coordination(t)
	foreign := game.NewProfile(map[string]string{"P1": "Z", "P2": "A"})

	_, err := nash.IsPureNash(g, foreign)
	require.Error(t, err)
	assert.True(t, game.IsInvalidGame(err))

	_, err = nash.IsAdmissible(g, foreign)
	require.Error(t, err)

	_, err = nash.Dominates(g, foreign, foreign)
	require.Error(t, err)
}

func TestFinderDeterminism(t *testing.T) {
	g := testutil.Coordination(t)

	first, err := nash.FindPureNash(g)
	require.NoError(t, err)
	second, err := nash.FindPureNash(g)
	require.NoError(t, err)
	assert.Equal(t, keys(first), keys(second))
}
