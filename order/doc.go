// Package order implements the order-theory engine underlying posetal games:
// pre-orders and partial orders over a finite named ground set, their
// reflexive-transitive closures, Hasse (covering) structure, extremal
// elements, linear extensions, and exhaustive enumeration of candidate
// priority orders.
//
// REPRESENTATION:
//
// A relation is stored as a boolean closure matrix over the sorted ground
// set. The matrix always holds the full reflexive-transitive closure; every
// comparison query reads the closure, never the raw input pairs, so
// transitively implied relations can never produce false negatives.
//
// A pair (a, b) means a <= b: b sits at least as high as a. For priority
// orders over metrics, higher means more important.
//
// FOUR-VALUED COMPARISON:
//
// Compare classifies any two domain elements as Less, Greater, Equal, or
// Incomparable. Incomparable is a first-class, frequently occurring result,
// not an error. Equal covers both identity and mutual leq (pre-order ties).
//
// DETERMINISM:
//
// The ground set is sorted at construction and every derived collection
// (covering edges, extremal sets, enumeration order) iterates in that fixed
// order. Repeated calls with identical inputs yield identical output
// sequences; tests rely on this.
//
// Enumeration of all partial orders over n elements grows as the sequence
// 1, 3, 19, 219, 4231 for n = 1..5 and is refused beyond n = 5. This is a
// documented design limit, not an optimization target.
package order
