package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isTotal(po *PartialOrder) bool {
	for _, a := range po.Elements() {
		for _, b := range po.Elements() {
			if po.Compare(a, b) == Incomparable {
				return false
			}
		}
	}
	return true
}

func extendsRelations(base, completion *PartialOrder) bool {
	for _, p := range base.Relations() {
		if !completion.Leq(p.Low, p.High) {
			return false
		}
	}
	return true
}

func TestCompletionsChainHasSingleCompletion(t *testing.T) {
	po, err := NewPartialOrder([]string{"a", "b", "c"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "b", High: "c"},
	})
	require.NoError(t, err)

	completions := po.Completions()
	require.Len(t, completions, 1)
	assert.True(t, isTotal(completions[0]))
	assert.True(t, extendsRelations(po, completions[0]))
}

func TestCompletionsTwoIncomparableElements(t *testing.T) {
	po, err := Antichain([]string{"a", "b"})
	require.NoError(t, err)

	completions := po.Completions()
	require.Len(t, completions, 2)

	var aFirst, bFirst bool
	for _, c := range completions {
		assert.True(t, isTotal(c))
		assert.True(t, extendsRelations(po, c))
		aFirst = aFirst || c.Less("a", "b")
		bFirst = bFirst || c.Less("b", "a")
	}
	assert.True(t, aFirst)
	assert.True(t, bFirst)
}

func TestCompletionsFork(t *testing.T) {
	// a below both b and c; b and c incomparable.
	po, err := NewPartialOrder([]string{"a", "b", "c"}, []Pair{
		{Low: "a", High: "b"},
		{Low: "a", High: "c"},
	})
	require.NoError(t, err)

	completions := po.Completions()
	require.Len(t, completions, 2)

	var bBeforeC, cBeforeB bool
	for _, c := range completions {
		assert.True(t, isTotal(c))
		assert.True(t, extendsRelations(po, c))
		bBeforeC = bBeforeC || c.Less("b", "c")
		cBeforeB = cBeforeB || c.Less("c", "b")
	}
	assert.True(t, bBeforeC)
	assert.True(t, cBeforeB)
}

func TestCompletionsDeterministic(t *testing.T) {
	po, err := Antichain([]string{"m1", "m2", "m3"})
	require.NoError(t, err)

	first := po.Completions()
	second := po.Completions()
	require.Len(t, first, 6)
	require.Len(t, second, 6)
	for i := range first {
		assert.Equal(t, first[i].Key(), second[i].Key())
	}
}
