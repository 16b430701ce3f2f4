package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines one learning experiment: a game, an observed player,
// the candidate priority orders, and the rounds to replay.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description"`

	// Game is the CUE game definition directory, relative to the
	// scenario file.
	Game string `yaml:"game"`

	// Player is the observed player's ID.
	Player string `yaml:"player"`

	// Mode is the belief update mode: "probability" or "max".
	Mode string `yaml:"mode"`

	// Threshold is the convergence threshold recorded per round.
	Threshold float64 `yaml:"threshold"`

	// Candidates lists the candidate priority orders as [low, high] pair
	// lists over the game's metrics. An empty pair list is the
	// antichain. Assertions refer to candidates by index into this list.
	Candidates [][][]string `yaml:"candidates"`

	// Rounds lists the observed profiles, one player->action map per
	// round.
	Rounds []map[string]string `yaml:"rounds"`

	// Assertions validate the equilibria of the true game and the final
	// belief.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one aspect of a scenario run.
type Assertion struct {
	// Type selects the assertion:
	// - "equilibria": the true game's admissible undominated profiles
	// - "most_likely": the final arg-max candidate set
	// - "min_weight": a lower bound on one candidate's final weight
	// - "converged": the final convergence flag
	Type string `yaml:"type"`

	// Profiles are the expected profile strings (equilibria).
	Profiles []string `yaml:"profiles,omitempty"`

	// Candidates are the expected candidate indices (most_likely).
	Candidates []int `yaml:"candidates,omitempty"`

	// Candidate is the candidate index (min_weight).
	Candidate int `yaml:"candidate,omitempty"`

	// Weight is the lower bound (min_weight).
	Weight float64 `yaml:"weight,omitempty"`

	// Value is the expected flag (converged).
	Value bool `yaml:"value,omitempty"`
}

// Assertion type constants.
const (
	AssertEquilibria = "equilibria"
	AssertMostLikely = "most_likely"
	AssertMinWeight  = "min_weight"
	AssertConverged  = "converged"
)

// LoadScenario reads and parses a scenario YAML file. The game path is
// resolved relative to the scenario file's directory. Unknown YAML fields
// are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Game != "" && !filepath.IsAbs(scenario.Game) {
		scenario.Game = filepath.Join(filepath.Dir(path), scenario.Game)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Game == "" {
		return fmt.Errorf("game is required")
	}
	if _, err := os.Stat(s.Game); os.IsNotExist(err) {
		return fmt.Errorf("game definition not found: %s", s.Game)
	}
	if s.Player == "" {
		return fmt.Errorf("player is required")
	}
	if s.Mode != "probability" && s.Mode != "max" {
		return fmt.Errorf("mode must be \"probability\" or \"max\", got %q", s.Mode)
	}
	if s.Threshold <= 0 || s.Threshold > 1 {
		return fmt.Errorf("threshold must be in (0, 1]")
	}
	if len(s.Candidates) == 0 {
		return fmt.Errorf("candidates list is required and must be non-empty")
	}
	for i, pairs := range s.Candidates {
		for _, p := range pairs {
			if len(p) != 2 {
				return fmt.Errorf("candidates[%d]: priority entries must be [low, high] pairs", i)
			}
		}
	}
	if len(s.Rounds) == 0 {
		return fmt.Errorf("rounds list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a, len(s.Candidates)); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, candidates int) error {
	switch a.Type {
	case AssertEquilibria:
		if len(a.Profiles) == 0 {
			return fmt.Errorf("assertions[%d]: profiles list is required for equilibria", index)
		}
	case AssertMostLikely:
		if len(a.Candidates) == 0 {
			return fmt.Errorf("assertions[%d]: candidates list is required for most_likely", index)
		}
		for _, c := range a.Candidates {
			if c < 0 || c >= candidates {
				return fmt.Errorf("assertions[%d]: candidate index %d out of range", index, c)
			}
		}
	case AssertMinWeight:
		if a.Candidate < 0 || a.Candidate >= candidates {
			return fmt.Errorf("assertions[%d]: candidate index %d out of range", index, a.Candidate)
		}
		if a.Weight <= 0 || a.Weight > 1 {
			return fmt.Errorf("assertions[%d]: weight must be in (0, 1]", index)
		}
	case AssertConverged:
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
