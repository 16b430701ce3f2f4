package harness

import (
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/posetal/posetal/internal/canon"
	"github.com/posetal/posetal/internal/store"
)

// toCanonicalMap renders the result for golden comparison. Weights are
// keyed by candidate index and rendered as fixed-precision strings, so the
// snapshot is byte-stable and free of floats.
func toCanonicalMap(scenarioName string, result *Result) map[string]any {
	rounds := make([]any, len(result.Rounds))
	for i, r := range result.Rounds {
		rounds[i] = map[string]any{
			"round":     r.Round,
			"profile":   r.Profile.String(),
			"weights":   weightMap(r.Weights),
			"converged": r.Converged,
		}
	}
	return map[string]any{
		"scenario_name": scenarioName,
		"prior":         weightMap(result.Prior),
		"rounds":        rounds,
	}
}

func weightMap(weights []float64) map[string]any {
	out := make(map[string]any, len(weights))
	for i, w := range weights {
		out[strconv.Itoa(i)] = store.FormatWeight(w)
	}
	return out
}

// RunWithGolden runs a scenario, verifies its assertions, and compares the
// belief trajectory against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	if err := Verify(scenario, result); err != nil {
		return err
	}

	snapshot, err := canon.MarshalCanonical(toCanonicalMap(scenario.Name, result))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)
	return nil
}
