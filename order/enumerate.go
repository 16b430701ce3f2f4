package order

import (
	"fmt"
	"iter"
	"slices"
)

// Class selects which family of orders Enumerate generates.
type Class int

const (
	// ClassPartial enumerates every partial order on the ground set.
	ClassPartial Class = iota
	// ClassTotal enumerates every total order (one per permutation).
	ClassTotal
	// ClassWeak enumerates every weak order: total pre-orders, i.e.
	// rankings with ties.
	ClassWeak
)

func (c Class) String() string {
	switch c {
	case ClassPartial:
		return "partial"
	case ClassTotal:
		return "total"
	case ClassWeak:
		return "weak"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// MaxEnumerable bounds the ground-set size for enumeration. The partial
// order count grows as 1, 3, 19, 219, 4231 for n = 1..5; beyond that the
// candidate space (2^(n(n-1)) edge subsets) is not worth walking.
const MaxEnumerable = 5

// Enumerate returns a lazy, restartable, duplicate-free sequence of all
// distinct orders of the given class over elements. Ranging over the
// sequence a second time restarts it from the beginning. The enumeration
// order is deterministic for a fixed input.
func Enumerate(elements []string, class Class) (iter.Seq[*PreOrder], error) {
	switch class {
	case ClassPartial:
		partial, err := EnumeratePartialOrders(elements)
		if err != nil {
			return nil, err
		}
		return func(yield func(*PreOrder) bool) {
			for po := range partial {
				if !yield(&po.PreOrder) {
					return
				}
			}
		}, nil
	case ClassTotal:
		total, err := EnumerateTotalOrders(elements)
		if err != nil {
			return nil, err
		}
		return func(yield func(*PreOrder) bool) {
			for po := range total {
				if !yield(&po.PreOrder) {
					return
				}
			}
		}, nil
	case ClassWeak:
		return EnumerateWeakOrders(elements)
	default:
		return nil, fmt.Errorf("unknown order class %v", class)
	}
}

// EnumeratePartialOrders yields every distinct partial order on elements.
//
// Candidates are generated as subsets of the n(n-1) possible directed edges.
// Each subset is validated through NewPartialOrder (cyclic subsets fail the
// antisymmetry check after closure) and deduplicated by closure key, since
// many edge subsets share one transitive closure.
func EnumeratePartialOrders(elements []string) (iter.Seq[*PartialOrder], error) {
	ground, err := enumerationGround(elements)
	if err != nil {
		return nil, err
	}
	return func(yield func(*PartialOrder) bool) {
		n := len(ground)
		var edges []Pair
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					edges = append(edges, Pair{Low: ground[i], High: ground[j]})
				}
			}
		}

		seen := make(map[string]bool)
		for mask := 0; mask < 1<<len(edges); mask++ {
			subset, ok := edgeSubset(edges, mask)
			if !ok {
				continue // contains a 2-cycle, cannot be antisymmetric
			}
			po, err := NewPartialOrder(ground, subset)
			if err != nil {
				continue // longer cycle surfaced by the antisymmetry check
			}
			if seen[po.Key()] {
				continue
			}
			seen[po.Key()] = true
			if !yield(po) {
				return
			}
		}
	}, nil
}

// edgeSubset materializes the mask's edges, reporting false as soon as a
// mutual pair shows up.
func edgeSubset(edges []Pair, mask int) ([]Pair, bool) {
	var subset []Pair
	present := make(map[Pair]bool)
	for idx, e := range edges {
		if mask&(1<<idx) == 0 {
			continue
		}
		if present[Pair{Low: e.High, High: e.Low}] {
			return nil, false
		}
		present[e] = true
		subset = append(subset, e)
	}
	return subset, true
}

// EnumerateTotalOrders yields one total order per permutation of elements,
// in lexicographic permutation order.
func EnumerateTotalOrders(elements []string) (iter.Seq[*PartialOrder], error) {
	ground, err := enumerationGround(elements)
	if err != nil {
		return nil, err
	}
	return func(yield func(*PartialOrder) bool) {
		perm := make([]string, 0, len(ground))
		used := make([]bool, len(ground))
		var walk func() bool
		walk = func() bool {
			if len(perm) == len(ground) {
				total, err := TotalOrderFromSlice(perm)
				if err != nil {
					panic(err)
				}
				return yield(total)
			}
			for i, e := range ground {
				if used[i] {
					continue
				}
				used[i] = true
				perm = append(perm, e)
				ok := walk()
				perm = perm[:len(perm)-1]
				used[i] = false
				if !ok {
					return false
				}
			}
			return true
		}
		walk()
	}, nil
}

// EnumerateWeakOrders yields every weak order on elements: one per ordered
// partition of the ground set into priority tiers, lowest tier first.
// Counts follow the Fubini numbers: 1, 3, 13, 75 for n = 1..4.
func EnumerateWeakOrders(elements []string) (iter.Seq[*PreOrder], error) {
	ground, err := enumerationGround(elements)
	if err != nil {
		return nil, err
	}
	return func(yield func(*PreOrder) bool) {
		var tiers [][]string
		var walk func(remaining []string) bool
		walk = func(remaining []string) bool {
			if len(remaining) == 0 {
				pre, err := NewPreOrder(ground, tierPairs(tiers))
				if err != nil {
					panic(err)
				}
				return yield(pre)
			}
			// Every nonempty subset of remaining can be the next
			// (lowest) tier. Distinct tier sequences are distinct weak
			// orders, so no deduplication is needed.
			n := len(remaining)
			for bits := 1; bits < 1<<n; bits++ {
				var tier, rest []string
				for i, e := range remaining {
					if bits&(1<<i) != 0 {
						tier = append(tier, e)
					} else {
						rest = append(rest, e)
					}
				}
				tiers = append(tiers, tier)
				ok := walk(rest)
				tiers = tiers[:len(tiers)-1]
				if !ok {
					return false
				}
			}
			return true
		}
		walk(ground)
	}, nil
}

// tierPairs turns an ordered tier partition into relation pairs: ties within
// a tier, and everything in a lower tier below everything in a higher one.
func tierPairs(tiers [][]string) []Pair {
	var pairs []Pair
	for i, lower := range tiers {
		for _, a := range lower {
			for _, b := range lower {
				pairs = append(pairs, Pair{Low: a, High: b})
			}
			for _, upper := range tiers[i+1:] {
				for _, b := range upper {
					pairs = append(pairs, Pair{Low: a, High: b})
				}
			}
		}
	}
	return pairs
}

func enumerationGround(elements []string) ([]string, error) {
	if len(elements) == 0 {
		return nil, &InvalidRelationError{Reason: "empty ground set"}
	}
	ground := slices.Clone(elements)
	slices.Sort(ground)
	ground = slices.Compact(ground)
	if len(ground) > MaxEnumerable {
		return nil, fmt.Errorf("enumerating orders over %d elements exceeds the supported maximum of %d", len(ground), MaxEnumerable)
	}
	return ground, nil
}
