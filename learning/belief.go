package learning

import (
	"log/slog"
	"math"
	"slices"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/posetal/posetal/order"
)

// normTolerance bounds the drift we silently accept before renormalizing a
// prior with a warning.
const normTolerance = 1e-9

// Belief is a normalized weight distribution over candidate partial orders.
// Candidates are identified by content key, so structurally equal orders
// share one slot. Beliefs are immutable: Update and the session loop always
// produce fresh values.
type Belief struct {
	keys    []string // sorted candidate keys
	orders  map[string]*order.PartialOrder
	weights map[string]float64
}

// NewBelief builds a belief from parallel candidate and weight slices.
// Weights must lie in [0, 1] with positive total; a total differing from 1
// is renormalized with a warning.
func NewBelief(candidates []*order.PartialOrder, weights []float64) (*Belief, error) {
	if len(candidates) == 0 {
		return nil, &InvalidBeliefError{Reason: "no candidates"}
	}
	if len(weights) != len(candidates) {
		return nil, &InvalidBeliefError{Reason: "weights do not match candidates"}
	}

	orders := make(map[string]*order.PartialOrder, len(candidates))
	ws := make(map[string]float64, len(candidates))
	total := 0.0
	for i, c := range candidates {
		if c == nil {
			return nil, &InvalidBeliefError{Reason: "nil candidate"}
		}
		w := weights[i]
		if math.IsNaN(w) || w < 0 || w > 1 {
			return nil, &InvalidBeliefError{Reason: "weight outside [0, 1]"}
		}
		k := c.Key()
		if _, dup := orders[k]; dup {
			return nil, &InvalidBeliefError{Reason: "duplicate candidate order"}
		}
		orders[k] = c
		ws[k] = w
		total += w
	}
	if total <= 0 {
		return nil, &InvalidBeliefError{Reason: "total mass is not positive"}
	}

	if math.Abs(total-1) > normTolerance {
		slog.Warn("normalizing prior belief", "total", total, "candidates", len(candidates))
		for k := range ws {
			ws[k] /= total
		}
	}

	keys := make([]string, 0, len(orders))
	for k := range orders {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return &Belief{keys: keys, orders: orders, weights: ws}, nil
}

// Uniform builds the uniform belief over the candidates.
func Uniform(candidates []*order.PartialOrder) (*Belief, error) {
	if len(candidates) == 0 {
		return nil, &InvalidBeliefError{Reason: "no candidates"}
	}
	weights := make([]float64, len(candidates))
	for i := range weights {
		weights[i] = 1.0 / float64(len(candidates))
	}
	return NewBelief(candidates, weights)
}

// normalized builds a belief from an already validated weight map whose
// values sum to a positive total.
func normalized(keys []string, orders map[string]*order.PartialOrder, weights map[string]float64) *Belief {
	total := 0.0
	for _, k := range keys {
		total += weights[k]
	}
	ws := make(map[string]float64, len(weights))
	for _, k := range keys {
		ws[k] = weights[k] / total
	}
	return &Belief{keys: keys, orders: orders, weights: ws}
}

// Len returns the number of candidates.
func (b *Belief) Len() int { return len(b.keys) }

// Candidates returns the candidate orders sorted by content key.
func (b *Belief) Candidates() []*order.PartialOrder {
	out := make([]*order.PartialOrder, len(b.keys))
	for i, k := range b.keys {
		out[i] = b.orders[k]
	}
	return out
}

// Weight returns the mass assigned to the candidate's content key; absent
// candidates carry zero mass.
func (b *Belief) Weight(c *order.PartialOrder) float64 {
	return b.weights[c.Key()]
}

// WeightByKey returns the mass assigned to the given content key.
func (b *Belief) WeightByKey(key string) float64 { return b.weights[key] }

// Weights returns a copy of the key->mass map.
func (b *Belief) Weights() map[string]float64 {
	out := make(map[string]float64, len(b.weights))
	for k, v := range b.weights {
		out[k] = v
	}
	return out
}

// MostLikely returns every candidate carrying the maximum mass, sorted by
// content key. Ties are preserved, not broken.
func (b *Belief) MostLikely() []*order.PartialOrder {
	max := math.Inf(-1)
	for _, k := range b.keys {
		if b.weights[k] > max {
			max = b.weights[k]
		}
	}
	var out []*order.PartialOrder
	for _, k := range b.keys {
		if b.weights[k] == max {
			out = append(out, b.orders[k])
		}
	}
	return out
}

// Sample draws one candidate proportionally to its mass.
func (b *Belief) Sample(src rand.Source) *order.PartialOrder {
	w := make([]float64, len(b.keys))
	for i, k := range b.keys {
		w[i] = b.weights[k]
	}
	idx, ok := sampleuv.NewWeighted(w, src).Take()
	if !ok {
		// Total mass is positive by construction.
		idx = 0
	}
	return b.orders[b.keys[idx]]
}

// Entropy returns the Shannon entropy of the distribution in nats. Zero
// means all mass sits on one candidate.
func (b *Belief) Entropy() float64 {
	w := make([]float64, len(b.keys))
	for i, k := range b.keys {
		w[i] = b.weights[k]
	}
	return stat.Entropy(w)
}

// Update applies a multiplicative Bayes step: posterior mass is prior mass
// times the likelihood for that candidate's key, renormalized. Candidates
// missing from the likelihood map are treated as zero with a warning. A
// posterior with no mass left is a ZeroMassError.
func Update(prior *Belief, likelihoods map[string]float64) (*Belief, error) {
	posterior := make(map[string]float64, len(prior.keys))
	total := 0.0
	for _, k := range prior.keys {
		lik, ok := likelihoods[k]
		if !ok {
			slog.Warn("candidate missing from likelihoods, assuming zero", "key", k)
		}
		if math.IsNaN(lik) || lik < 0 {
			return nil, &InvalidBeliefError{Reason: "negative or NaN likelihood"}
		}
		posterior[k] = prior.weights[k] * lik
		total += posterior[k]
	}
	if total <= 0 {
		return nil, &ZeroMassError{}
	}
	return normalized(prior.keys, prior.orders, posterior), nil
}
