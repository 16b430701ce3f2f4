package order

import (
	"slices"

	"github.com/posetal/posetal/internal/canon"
)

// Pair is a single relation statement: Low <= High.
type Pair struct {
	Low  string
	High string
}

// Comparison is the four-valued result of comparing two elements.
// Incomparable is a normal outcome, not an error.
type Comparison int

const (
	Incomparable Comparison = iota
	Equal
	Less
	Greater
)

func (c Comparison) String() string {
	switch c {
	case Equal:
		return "equal"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Flip mirrors the comparison: Less becomes Greater and vice versa.
func (c Comparison) Flip() Comparison {
	switch c {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return c
	}
}

// PreOrder is a reflexive, transitive relation over a finite named ground
// set. The stored matrix is always the full reflexive-transitive closure of
// the construction input.
type PreOrder struct {
	elements []string
	index    map[string]int
	leq      []bool // n*n closure matrix; leq[i*n+j] means elements[i] <= elements[j]
	key      string // lazy content key
}

// NewPreOrder builds a pre-order over elements from the given pairs. The
// reflexive-transitive closure is computed at construction; the input need
// not be closed. Pairs referencing elements outside the ground set yield an
// InvalidRelationError.
func NewPreOrder(elements []string, pairs []Pair) (*PreOrder, error) {
	if len(elements) == 0 {
		return nil, &InvalidRelationError{Reason: "empty ground set"}
	}

	sorted := slices.Clone(elements)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	index := make(map[string]int, len(sorted))
	for i, e := range sorted {
		index[e] = i
	}

	n := len(sorted)
	leq := make([]bool, n*n)
	for i := 0; i < n; i++ {
		leq[i*n+i] = true
	}
	for _, p := range pairs {
		i, ok := index[p.Low]
		if !ok {
			return nil, &InvalidRelationError{Element: p.Low, Pair: [2]string{p.Low, p.High}, Reason: "pair references element outside ground set"}
		}
		j, ok := index[p.High]
		if !ok {
			return nil, &InvalidRelationError{Element: p.High, Pair: [2]string{p.Low, p.High}, Reason: "pair references element outside ground set"}
		}
		leq[i*n+j] = true
	}

	// Floyd-Warshall reachability closes the relation under transitivity.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !leq[i*n+k] {
				continue
			}
			for j := 0; j < n; j++ {
				if leq[k*n+j] {
					leq[i*n+j] = true
				}
			}
		}
	}

	return &PreOrder{elements: sorted, index: index, leq: leq}, nil
}

// Len returns the size of the ground set.
func (p *PreOrder) Len() int { return len(p.elements) }

// Elements returns the sorted ground set as a copy.
func (p *PreOrder) Elements() []string { return slices.Clone(p.elements) }

// Contains reports whether e belongs to the ground set.
func (p *PreOrder) Contains(e string) bool {
	_, ok := p.index[e]
	return ok
}

// Leq reports a <= b. Elements outside the ground set relate to nothing.
func (p *PreOrder) Leq(a, b string) bool {
	i, ok := p.index[a]
	if !ok {
		return false
	}
	j, ok := p.index[b]
	if !ok {
		return false
	}
	return p.leq[i*len(p.elements)+j]
}

// Less reports a < b: a <= b and not b <= a.
func (p *PreOrder) Less(a, b string) bool { return p.Leq(a, b) && !p.Leq(b, a) }

// Geq reports a >= b.
func (p *PreOrder) Geq(a, b string) bool { return p.Leq(b, a) }

// Greater reports a > b.
func (p *PreOrder) Greater(a, b string) bool { return p.Less(b, a) }

// Compare classifies the relationship between a and b. Exactly one of the
// four results holds for any pair of domain elements; elements outside the
// domain are incomparable to everything.
func (p *PreOrder) Compare(a, b string) Comparison {
	ab := p.Leq(a, b)
	ba := p.Leq(b, a)
	switch {
	case ab && ba:
		return Equal
	case ab:
		return Less
	case ba:
		return Greater
	default:
		return Incomparable
	}
}

// Relations returns every pair of the closure, reflexive pairs included, in
// ground-set order. Feeding the result back into NewPreOrder reproduces the
// same relation (closure idempotence).
func (p *PreOrder) Relations() []Pair {
	n := len(p.elements)
	var out []Pair
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if p.leq[i*n+j] {
				out = append(out, Pair{Low: p.elements[i], High: p.elements[j]})
			}
		}
	}
	return out
}

// SubOrder returns the pre-order induced on subset. Every subset member must
// belong to the ground set.
func (p *PreOrder) SubOrder(subset []string) (*PreOrder, error) {
	for _, e := range subset {
		if !p.Contains(e) {
			return nil, &InvalidRelationError{Element: e, Reason: "subset element outside ground set"}
		}
	}
	var pairs []Pair
	for _, a := range subset {
		for _, b := range subset {
			if p.Leq(a, b) {
				pairs = append(pairs, Pair{Low: a, High: b})
			}
		}
	}
	return NewPreOrder(subset, pairs)
}

// EquivalenceClasses partitions the ground set into classes of mutually
// related elements. Each class is sorted; classes are ordered by their
// smallest member. In a partial order every class is a singleton.
func (p *PreOrder) EquivalenceClasses() [][]string {
	var classes [][]string
	assigned := make(map[string]bool, len(p.elements))
	for _, e := range p.elements {
		if assigned[e] {
			continue
		}
		class := []string{e}
		assigned[e] = true
		for _, f := range p.elements {
			if !assigned[f] && p.Leq(e, f) && p.Leq(f, e) {
				class = append(class, f)
				assigned[f] = true
			}
		}
		classes = append(classes, class)
	}
	return classes
}

// CoveringEdges returns the Hasse edges of the relation: (low, high) pairs
// where high strictly dominates low with no element strictly between them.
// Edges run between equivalence-class representatives (the smallest member
// of each class), so no edge is ever implied by transitivity through a
// third class.
func (p *PreOrder) CoveringEdges() []Pair {
	classes := p.EquivalenceClasses()
	reps := make([]string, len(classes))
	for i, c := range classes {
		reps[i] = c[0]
	}

	var edges []Pair
	for _, lo := range reps {
		for _, hi := range reps {
			if !p.Less(lo, hi) {
				continue
			}
			covered := true
			for _, mid := range reps {
				if p.Less(lo, mid) && p.Less(mid, hi) {
					covered = false
					break
				}
			}
			if covered {
				edges = append(edges, Pair{Low: lo, High: hi})
			}
		}
	}
	return edges
}

// MinimalElements returns the members of subset with nothing from subset
// strictly below them. A nil subset means the whole ground set. Entries
// outside the domain are ignored. Ties are expected and all returned.
func (p *PreOrder) MinimalElements(subset []string) []string {
	return p.extremal(subset, p.Less)
}

// MaximalElements is the dual of MinimalElements: members of subset with
// nothing from subset strictly above them.
func (p *PreOrder) MaximalElements(subset []string) []string {
	return p.extremal(subset, p.Greater)
}

func (p *PreOrder) extremal(subset []string, beats func(a, b string) bool) []string {
	domain := subset
	if domain == nil {
		domain = p.elements
	}
	var pool []string
	for _, e := range domain {
		if p.Contains(e) {
			pool = append(pool, e)
		}
	}
	var out []string
	for _, e := range pool {
		extremal := true
		for _, f := range pool {
			if beats(f, e) {
				extremal = false
				break
			}
		}
		if extremal {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Key returns a stable content-addressed key for the relation, suitable as a
// map key across runs. Two relations with the same ground set and closure
// share a key.
func (p *PreOrder) Key() string {
	if p.key != "" {
		return p.key
	}
	rels := p.Relations()
	pairs := make([]any, len(rels))
	for i, r := range rels {
		pairs[i] = []any{r.Low, r.High}
	}
	key, err := canon.Key(canon.DomainOrder, map[string]any{
		"elements":  p.elements,
		"relations": pairs,
	})
	if err != nil {
		// The payload is built from strings only; canonical marshaling
		// cannot fail on it.
		panic(err)
	}
	p.key = key
	return key
}

// PartialOrder is a PreOrder that is additionally antisymmetric.
type PartialOrder struct {
	PreOrder
}

// NewPartialOrder builds a partial order, rejecting relations whose closure
// relates two distinct elements in both directions.
func NewPartialOrder(elements []string, pairs []Pair) (*PartialOrder, error) {
	pre, err := NewPreOrder(elements, pairs)
	if err != nil {
		return nil, err
	}
	if a, b, ok := pre.antisymmetryViolation(); !ok {
		return nil, &NotAPartialOrderError{A: a, B: b}
	}
	return &PartialOrder{PreOrder: *pre}, nil
}

func (p *PreOrder) antisymmetryViolation() (string, string, bool) {
	n := len(p.elements)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p.leq[i*n+j] && p.leq[j*n+i] {
				return p.elements[i], p.elements[j], false
			}
		}
	}
	return "", "", true
}

// SubOrder returns the partial order induced on subset. Restricting a
// partial order cannot introduce an antisymmetry violation.
func (p *PartialOrder) SubOrder(subset []string) (*PartialOrder, error) {
	sub, err := p.PreOrder.SubOrder(subset)
	if err != nil {
		return nil, err
	}
	return &PartialOrder{PreOrder: *sub}, nil
}

// TotalOrderFromSlice builds the total order in which the first slice
// element is smallest.
func TotalOrderFromSlice(elements []string) (*PartialOrder, error) {
	var pairs []Pair
	for i, a := range elements {
		for _, b := range elements[i:] {
			pairs = append(pairs, Pair{Low: a, High: b})
		}
	}
	return NewPartialOrder(elements, pairs)
}

// Antichain builds the discrete partial order: every pair of distinct
// elements incomparable. Players with no priority information carry this
// order.
func Antichain(elements []string) (*PartialOrder, error) {
	return NewPartialOrder(elements, nil)
}
