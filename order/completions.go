package order

// Completions returns every linear extension of the partial order: all total
// orders over the same ground set whose relation contains this one. A chain
// has exactly one completion; a 2-element antichain has two.
//
// Extensions are produced by repeatedly picking a minimal element of the
// remaining set, candidates visited in sorted order, so the output sequence
// is deterministic.
func (p *PartialOrder) Completions() []*PartialOrder {
	var out []*PartialOrder
	remaining := p.Elements()
	sequence := make([]string, 0, len(remaining))
	p.extend(remaining, sequence, &out)
	return out
}

func (p *PartialOrder) extend(remaining, sequence []string, out *[]*PartialOrder) {
	if len(remaining) == 0 {
		total, err := TotalOrderFromSlice(sequence)
		if err != nil {
			// sequence is a permutation of a valid ground set
			panic(err)
		}
		*out = append(*out, total)
		return
	}
	for i, e := range remaining {
		minimal := true
		for _, f := range remaining {
			if p.Less(f, e) {
				minimal = false
				break
			}
		}
		if !minimal {
			continue
		}
		rest := make([]string, 0, len(remaining)-1)
		rest = append(rest, remaining[:i]...)
		rest = append(rest, remaining[i+1:]...)
		p.extend(rest, append(sequence, e), out)
	}
}
