package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPartial(t *testing.T, elements []string) []*PartialOrder {
	t.Helper()
	seq, err := EnumeratePartialOrders(elements)
	require.NoError(t, err)
	var out []*PartialOrder
	for po := range seq {
		out = append(out, po)
	}
	return out
}

func TestEnumeratePartialOrderCounts(t *testing.T) {
	// Known sequence for labeled posets: 1, 3, 19 for n = 1..3.
	assert.Len(t, collectPartial(t, []string{"a"}), 1)
	assert.Len(t, collectPartial(t, []string{"a", "b"}), 3)
	assert.Len(t, collectPartial(t, []string{"a", "b", "c"}), 19)
}

func TestEnumerateTwoMetricsExactSet(t *testing.T) {
	// For two metrics the universe is exactly: M1 < M2, M2 < M1, and the
	// antichain M1 || M2.
	orders := collectPartial(t, []string{"M1", "M2"})
	require.Len(t, orders, 2+1)

	keys := make(map[string]bool)
	for _, po := range orders {
		keys[po.Key()] = true
	}

	m1BelowM2, err := NewPartialOrder([]string{"M1", "M2"}, []Pair{{Low: "M1", High: "M2"}})
	require.NoError(t, err)
	m2BelowM1, err := NewPartialOrder([]string{"M1", "M2"}, []Pair{{Low: "M2", High: "M1"}})
	require.NoError(t, err)
	antichain, err := Antichain([]string{"M1", "M2"})
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		m1BelowM2.Key(): true,
		m2BelowM1.Key(): true,
		antichain.Key(): true,
	}, keys)
}

func TestEnumerateDuplicateFree(t *testing.T) {
	orders := collectPartial(t, []string{"a", "b", "c"})
	seen := make(map[string]bool)
	for _, po := range orders {
		assert.False(t, seen[po.Key()], "duplicate order in enumeration")
		seen[po.Key()] = true
	}
}

func TestEnumerateRestartable(t *testing.T) {
	seq, err := EnumeratePartialOrders([]string{"x", "y"})
	require.NoError(t, err)

	var first, second []string
	for po := range seq {
		first = append(first, po.Key())
	}
	for po := range seq {
		second = append(second, po.Key())
	}
	assert.Equal(t, first, second)

	// Early break, then restart from the top.
	var partial []string
	for po := range seq {
		partial = append(partial, po.Key())
		break
	}
	require.Len(t, partial, 1)
	assert.Equal(t, first[0], partial[0])
}

func TestEnumerateTotalOrders(t *testing.T) {
	seq, err := EnumerateTotalOrders([]string{"a", "b", "c"})
	require.NoError(t, err)

	var count int
	for po := range seq {
		count++
		assert.True(t, isTotal(po))
	}
	assert.Equal(t, 6, count)
}

func TestEnumerateWeakOrders(t *testing.T) {
	// Fubini numbers: 1, 3, 13.
	for _, tt := range []struct {
		elements []string
		want     int
	}{
		{[]string{"a"}, 1},
		{[]string{"a", "b"}, 3},
		{[]string{"a", "b", "c"}, 13},
	} {
		seq, err := EnumerateWeakOrders(tt.elements)
		require.NoError(t, err)
		var count int
		seen := make(map[string]bool)
		for pre := range seq {
			count++
			assert.False(t, seen[pre.Key()])
			seen[pre.Key()] = true
			// Weak orders are total up to ties: no incomparable pair.
			for _, a := range pre.Elements() {
				for _, b := range pre.Elements() {
					assert.NotEqual(t, Incomparable, pre.Compare(a, b))
				}
			}
		}
		assert.Equal(t, tt.want, count, "weak order count for %v", tt.elements)
	}
}

func TestEnumerateRefusesLargeGroundSets(t *testing.T) {
	_, err := EnumeratePartialOrders([]string{"a", "b", "c", "d", "e", "f"})
	require.Error(t, err)
}

func TestEnumerateDispatch(t *testing.T) {
	seq, err := Enumerate([]string{"a", "b"}, ClassWeak)
	require.NoError(t, err)
	var count int
	for range seq {
		count++
	}
	assert.Equal(t, 3, count)

	seq, err = Enumerate([]string{"a", "b"}, ClassPartial)
	require.NoError(t, err)
	count = 0
	for range seq {
		count++
	}
	assert.Equal(t, 3, count)

	_, err = Enumerate([]string{"a"}, Class(99))
	require.Error(t, err)
}
