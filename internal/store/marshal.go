package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/posetal/posetal/internal/canon"
)

// weightPrecision is the number of decimal places kept in stored belief
// weights. Nine places keeps trajectories byte-stable across platforms
// while losing nothing a human or a golden file cares about.
const weightPrecision = 9

// EncodeBelief renders a belief snapshot as canonical JSON mapping
// candidate keys to fixed-precision weight strings. Floats never enter the
// canonical encoder.
func EncodeBelief(weights map[string]float64) (string, error) {
	obj := make(map[string]any, len(weights))
	for k, w := range weights {
		obj[k] = FormatWeight(w)
	}
	data, err := canon.MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("encode belief: %w", err)
	}
	return string(data), nil
}

// DecodeBelief parses an encoded belief snapshot back into weights.
func DecodeBelief(encoded string) (map[string]float64, error) {
	var obj map[string]string
	if err := json.Unmarshal([]byte(encoded), &obj); err != nil {
		return nil, fmt.Errorf("decode belief: %w", err)
	}
	out := make(map[string]float64, len(obj))
	for k, s := range obj {
		w, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("decode belief weight %q: %w", s, err)
		}
		out[k] = w
	}
	return out, nil
}

// FormatWeight renders one weight at the stored precision.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', weightPrecision, 64)
}
