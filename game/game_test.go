package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/internal/testutil"
	"github.com/posetal/posetal/order"
)

func constMetric(name string, v float64) game.Metric {
	return game.Metric{Name: name, Outcome: func(game.Profile) float64 { return v }}
}

func TestNewValidation(t *testing.T) {
	pref := testutil.Chain(t, "m1", "m2")
	okPlayer := game.Player{ID: "P1", Actions: []string{"A"}, Preference: pref}
	okMetrics := []game.Metric{constMetric("m1", 0), constMetric("m2", 0)}

	tests := []struct {
		name    string
		players []game.Player
		metrics []game.Metric
		check   func(t *testing.T, err error)
	}{
		{
			name:    "no players",
			players: nil,
			metrics: okMetrics,
		},
		{
			name:    "no metrics",
			players: []game.Player{okPlayer},
			metrics: nil,
		},
		{
			name:    "empty metric name",
			players: []game.Player{okPlayer},
			metrics: []game.Metric{constMetric("", 0)},
		},
		{
			name:    "nil outcome function",
			players: []game.Player{okPlayer},
			metrics: []game.Metric{{Name: "m1"}, constMetric("m2", 0)},
		},
		{
			name:    "duplicate metric names",
			players: []game.Player{okPlayer},
			metrics: []game.Metric{constMetric("m1", 0), constMetric("m1", 1)},
		},
		{
			name:    "empty player ID",
			players: []game.Player{{ID: "", Actions: []string{"A"}, Preference: pref}},
			metrics: okMetrics,
		},
		{
			name:    "duplicate player ID",
			players: []game.Player{okPlayer, okPlayer},
			metrics: okMetrics,
		},
		{
			name:    "empty action set",
			players: []game.Player{{ID: "P1", Preference: pref}},
			metrics: okMetrics,
			check: func(t *testing.T, err error) {
				assert.True(t, game.IsEmptyActionSpace(err))
			},
		},
		{
			name:    "missing preference",
			players: []game.Player{{ID: "P1", Actions: []string{"A"}}},
			metrics: okMetrics,
		},
		{
			name:    "preference over wrong metric set",
			players: []game.Player{{ID: "P1", Actions: []string{"A"}, Preference: testutil.Chain(t, "m1", "other")}},
			metrics: okMetrics,
		},
		{
			name:    "non-finite outcome",
			players: []game.Player{okPlayer},
			metrics: []game.Metric{
				constMetric("m1", 0),
				{Name: "m2", Outcome: func(game.Profile) float64 { return 1.0 / zero() }},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := game.New(tt.players, tt.metrics)
			require.Error(t, err)
			assert.True(t, game.IsInvalidGame(err))
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

// zero defeats constant folding so the division above is evaluated at run
// time.
func zero() float64 { return 0 }

func TestProfileSpace(t *testing.T) {
	g := testutil.Coordination(t)

	profiles := g.Profiles()
	require.Len(t, profiles, 4)

	keys := make(map[string]bool)
	for _, p := range profiles {
		keys[p.Key()] = true
		assert.Equal(t, 2, p.Len())
	}
	assert.Len(t, keys, 4, "profile keys must be distinct")

	assert.Equal(t, []string{"p1_payoff", "p2_payoff"}, g.MetricNames())

	p, ok := g.Player("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, p.Actions)

	_, ok = g.Player("P3")
	assert.False(t, ok)
}

func TestEvaluate(t *testing.T) {
	g := testutil.Coordination(t)

	match := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "A"})
	row, err := g.Evaluate(match)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"p1_payoff": 1, "p2_payoff": 1}, row)

	miss := testutil.MustProfile(t, g, map[string]string{"P1": "A", "P2": "B"})
	row, err = g.Evaluate(miss)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"p1_payoff": 0, "p2_payoff": 0}, row)

	// Rows are copies; mutating one must not leak back.
	row["p1_payoff"] = 99
	again, err := g.Evaluate(miss)
	require.NoError(t, err)
	assert.Equal(t, 0.0, again["p1_payoff"])

	_, err = g.Evaluate(game.NewProfile(map[string]string{"P1": "C", "P2": "A"}))
	require.Error(t, err)
	assert.True(t, game.IsInvalidGame(err))
}

func TestProfileValueSemantics(t *testing.T) {
	src := map[string]string{"P1": "A", "P2": "B"}
	p := game.NewProfile(src)

	src["P1"] = "B" // input map must have been copied
	a, ok := p.Action("P1")
	require.True(t, ok)
	assert.Equal(t, "A", a)

	q := p.With("P1", "B")
	a, _ = p.Action("P1")
	assert.Equal(t, "A", a, "With must not mutate the receiver")
	b, _ := q.Action("P1")
	assert.Equal(t, "B", b)

	same := game.NewProfile(map[string]string{"P2": "B", "P1": "A"})
	assert.Equal(t, p.Key(), same.Key(), "key ignores insertion order")
	assert.Equal(t, "P1=A P2=B", p.String())
}

func TestGameKey(t *testing.T) {
	a := testutil.Coordination(t)
	b := testutil.Coordination(t)
	assert.Equal(t, a.Key(), b.Key(), "identical games share a key")

	flipped, err := a.WithPreferences(map[string]*order.PartialOrder{
		"P1": testutil.Chain(t, "p1_payoff", "p2_payoff"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, a.Key(), flipped.Key(), "preferences are part of the key")
}

func TestWithPreferences(t *testing.T) {
	g := testutil.Coordination(t)

	anti := testutil.Incomparable(t, "p1_payoff", "p2_payoff")
	derived, err := g.WithPreferences(map[string]*order.PartialOrder{"P1": anti})
	require.NoError(t, err)

	p1, ok := derived.Player("P1")
	require.True(t, ok)
	assert.Equal(t, anti.Key(), p1.Preference.Key())

	// Untouched players keep their orders, and the original is unchanged.
	p2, ok := derived.Player("P2")
	require.True(t, ok)
	orig2, _ := g.Player("P2")
	assert.Equal(t, orig2.Preference.Key(), p2.Preference.Key())

	orig1, _ := g.Player("P1")
	assert.NotEqual(t, anti.Key(), orig1.Preference.Key())

	// Substituting an order over the wrong elements fails validation.
	_, err = g.WithPreferences(map[string]*order.PartialOrder{"P1": testutil.Chain(t, "x", "y")})
	require.Error(t, err)
	assert.True(t, game.IsInvalidGame(err))
}
