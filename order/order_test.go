package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreOrderComputesClosure(t *testing.T) {
	pre, err := NewPreOrder([]string{"a", "b", "c"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "b", High: "c"},
	})
	require.NoError(t, err)

	// Reflexive closure
	assert.True(t, pre.Leq("a", "a"))
	assert.True(t, pre.Leq("c", "c"))
	// Transitive closure
	assert.True(t, pre.Leq("a", "c"))
	assert.False(t, pre.Leq("c", "a"))
}

func TestClosureIdempotence(t *testing.T) {
	tests := []struct {
		name     string
		elements []string
		pairs    []Pair
	}{
		{"chain", []string{"a", "b", "c"}, []Pair{{Low: "a", High: "b"}, {Low: "b", High: "c"}}},
		{"antichain", []string{"x", "y"}, nil},
		{"tie", []string{"p", "q"}, []Pair{{Low: "p", High: "q"}, {Low: "q", High: "p"}}},
		{"diamond", []string{"a", "b", "c", "d"}, []Pair{
			{Low: "a", High: "b"}, {Low: "a", High: "c"},
			{Low: "b", High: "d"}, {Low: "c", High: "d"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once, err := NewPreOrder(tt.elements, tt.pairs)
			require.NoError(t, err)
			twice, err := NewPreOrder(once.Elements(), once.Relations())
			require.NoError(t, err)
			assert.Equal(t, once.Relations(), twice.Relations())
			assert.Equal(t, once.Key(), twice.Key())
		})
	}
}

func TestNewPreOrderRejectsOutOfDomainPair(t *testing.T) {
	_, err := NewPreOrder([]string{"a", "b"}, []Pair{{Low: "a", High: "z"}})
	require.Error(t, err)
	assert.True(t, IsInvalidRelation(err))

	_, err = NewPreOrder(nil, nil)
	require.Error(t, err)
	assert.True(t, IsInvalidRelation(err))
}

func TestNewPartialOrderRejectsMutualPairs(t *testing.T) {
	_, err := NewPartialOrder([]string{"a", "b"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "b", High: "a"},
	})
	require.Error(t, err)
	assert.True(t, IsNotAPartialOrder(err))

	// A cycle through a third element violates antisymmetry after closure.
	_, err = NewPartialOrder([]string{"a", "b", "c"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "b", High: "c"},
		{Low: "c", High: "a"},
	})
	require.Error(t, err)
	assert.True(t, IsNotAPartialOrder(err))
}

func TestCompareTotality(t *testing.T) {
	po, err := NewPartialOrder([]string{"a", "b", "c", "d"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "a", High: "c"},
	})
	require.NoError(t, err)

	// Exactly one classification holds for every ordered pair.
	for _, x := range po.Elements() {
		for _, y := range po.Elements() {
			cmp := po.Compare(x, y)
			switch cmp {
			case Equal:
				assert.True(t, po.Leq(x, y) && po.Leq(y, x))
			case Less:
				assert.True(t, po.Less(x, y))
			case Greater:
				assert.True(t, po.Greater(x, y))
			case Incomparable:
				assert.False(t, po.Leq(x, y))
				assert.False(t, po.Leq(y, x))
			}
			assert.Equal(t, cmp.Flip(), po.Compare(y, x))
		}
	}

	assert.Equal(t, Equal, po.Compare("a", "a"))
	assert.Equal(t, Less, po.Compare("a", "b"))
	assert.Equal(t, Greater, po.Compare("b", "a"))
	assert.Equal(t, Incomparable, po.Compare("b", "c"))
	assert.Equal(t, Incomparable, po.Compare("a", "missing"))
}

func TestCompareEqualOnPreOrderTie(t *testing.T) {
	pre, err := NewPreOrder([]string{"p", "q"}, []Pair{
		{Low: "p", High: "q"},
		{Low: "q", High: "p"},
	})
	require.NoError(t, err)
	assert.Equal(t, Equal, pre.Compare("p", "q"))
}

func TestCoveringEdgesAreMinimal(t *testing.T) {
	// Chain a < b < c: (a,c) is implied through b and must not appear.
	po, err := NewPartialOrder([]string{"a", "b", "c"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "b", High: "c"},
		{Low: "a", High: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Low: "a", High: "b"}, {Low: "b", High: "c"}}, po.CoveringEdges())
}

func TestCoveringEdgesDiamond(t *testing.T) {
	po, err := NewPartialOrder([]string{"bot", "l", "r", "top"}, []Pair{
		{Low: "bot", High: "l"},
		{Low: "bot", High: "r"},
		{Low: "l", High: "top"},
		{Low: "r", High: "top"},
	})
	require.NoError(t, err)

	edges := po.CoveringEdges()
	assert.Len(t, edges, 4)
	assert.NotContains(t, edges, Pair{Low: "bot", High: "top"})
}

func TestCoveringEdgesCollapseEquivalenceClasses(t *testing.T) {
	// a ~ b below c: one Hasse edge from the class representative.
	pre, err := NewPreOrder([]string{"a", "b", "c"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "b", High: "a"},
		{Low: "a", High: "c"},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, pre.EquivalenceClasses())
	assert.Equal(t, []Pair{{Low: "a", High: "c"}}, pre.CoveringEdges())
}

func TestExtremalElements(t *testing.T) {
	po, err := NewPartialOrder([]string{"a", "b", "c", "d"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "a", High: "c"},
		{Low: "d", High: "c"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "d"}, po.MinimalElements(nil))
	assert.Equal(t, []string{"b", "c"}, po.MaximalElements(nil))

	// Restricted to a subset; ties are returned as a set, never broken.
	assert.Equal(t, []string{"b", "c"}, po.MaximalElements([]string{"b", "c"}))
	assert.Equal(t, []string{"a"}, po.MinimalElements([]string{"a", "b"}))
}

func TestSubOrder(t *testing.T) {
	pre, err := NewPreOrder([]string{"1", "2", "3", "4"}, []Pair{
		{Low: "1", High: "2"},
		{Low: "2", High: "3"},
		{Low: "3", High: "4"},
	})
	require.NoError(t, err)

	sub, err := pre.SubOrder([]string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, sub.Elements())
	assert.True(t, sub.Leq("1", "3"))
	assert.False(t, sub.Contains("4"))

	_, err = pre.SubOrder([]string{"1", "9"})
	require.Error(t, err)
	assert.True(t, IsInvalidRelation(err))
}

func TestTotalOrderFromSlice(t *testing.T) {
	po, err := TotalOrderFromSlice([]string{"low", "mid", "high"})
	require.NoError(t, err)

	assert.True(t, po.Less("low", "mid"))
	assert.True(t, po.Less("mid", "high"))
	assert.True(t, po.Less("low", "high"))
	assert.False(t, po.Leq("high", "low"))
	assert.Equal(t, []string{"high"}, po.MaximalElements(nil))
}

func TestAntichain(t *testing.T) {
	po, err := Antichain([]string{"x", "y", "z"})
	require.NoError(t, err)

	assert.Equal(t, Incomparable, po.Compare("x", "y"))
	assert.Empty(t, po.CoveringEdges())
	assert.Equal(t, []string{"x", "y", "z"}, po.MinimalElements(nil))
	assert.Equal(t, []string{"x", "y", "z"}, po.MaximalElements(nil))
}

func TestKeyIdentifiesClosure(t *testing.T) {
	// Same closure reached from different edge sets shares a key.
	a, err := NewPartialOrder([]string{"x", "y", "z"}, []Pair{
		{Low: "x", High: "y"},
		{Low: "y", High: "z"},
	})
	require.NoError(t, err)
	b, err := NewPartialOrder([]string{"x", "y", "z"}, []Pair{
		{Low: "x", High: "y"},
		{Low: "y", High: "z"},
		{Low: "x", High: "z"},
	})
	require.NoError(t, err)
	c, err := NewPartialOrder([]string{"x", "y", "z"}, []Pair{
		{Low: "z", High: "y"},
	})
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
