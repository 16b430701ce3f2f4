package gamespec

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"

	"github.com/posetal/posetal/game"
	"github.com/posetal/posetal/order"
)

// playerDef is the decoded shape of one players entry.
type playerDef struct {
	Actions  []string   `json:"actions"`
	Priority [][]string `json:"priority"`
}

// compileGame turns the evaluated game struct into a *game.Game, validating
// metrics, players, priority orders, and payoff table completeness.
func compileGame(v cue.Value) (*game.Game, error) {
	var metrics []string
	metricsVal := v.LookupPath(cue.ParsePath("metrics"))
	if !metricsVal.Exists() {
		return nil, &SpecError{Code: CodeBadMetrics, Message: "missing metrics list", Pos: v.Pos()}
	}
	if err := metricsVal.Decode(&metrics); err != nil {
		return nil, &SpecError{Code: CodeBadMetrics, Message: fmt.Sprintf("decoding metrics: %v", err), Pos: metricsVal.Pos()}
	}
	if len(metrics) == 0 {
		return nil, &SpecError{Code: CodeBadMetrics, Message: "empty metrics list", Pos: metricsVal.Pos()}
	}

	players, playerOrder, err := compilePlayers(v, metrics)
	if err != nil {
		return nil, err
	}

	gameMetrics, err := compilePayoffs(v, metrics, players, playerOrder)
	if err != nil {
		return nil, err
	}

	g, err := game.New(players, gameMetrics)
	if err != nil {
		return nil, &SpecError{Code: CodeBadPlayer, Message: fmt.Sprintf("constructing game: %v", err), Pos: v.Pos(), Err: err}
	}
	return g, nil
}

// compilePlayers walks the players struct in field order, which fixes the
// payoff table's action tuple order.
func compilePlayers(v cue.Value, metrics []string) ([]game.Player, []string, error) {
	playersVal := v.LookupPath(cue.ParsePath("players"))
	if !playersVal.Exists() {
		return nil, nil, &SpecError{Code: CodeBadPlayer, Message: "missing players struct", Pos: v.Pos()}
	}
	iter, err := playersVal.Fields()
	if err != nil {
		return nil, nil, &SpecError{Code: CodeBadPlayer, Message: fmt.Sprintf("iterating players: %v", err), Pos: playersVal.Pos()}
	}

	var players []game.Player
	var playerOrder []string
	for iter.Next() {
		id := iter.Label()
		var def playerDef
		if err := iter.Value().Decode(&def); err != nil {
			return nil, nil, &SpecError{Code: CodeBadPlayer, Message: fmt.Sprintf("decoding player %q: %v", id, err), Pos: iter.Value().Pos()}
		}

		pairs := make([]order.Pair, 0, len(def.Priority))
		for _, p := range def.Priority {
			if len(p) != 2 {
				return nil, nil, &SpecError{Code: CodeBadPriority, Message: fmt.Sprintf("player %q: priority entries must be [low, high] pairs", id), Pos: iter.Value().Pos()}
			}
			pairs = append(pairs, order.Pair{Low: p[0], High: p[1]})
		}
		pref, err := order.NewPartialOrder(metrics, pairs)
		if err != nil {
			return nil, nil, &SpecError{Code: CodeBadPriority, Message: fmt.Sprintf("player %q: %v", id, err), Pos: iter.Value().Pos(), Err: err}
		}

		players = append(players, game.Player{ID: id, Actions: def.Actions, Preference: pref})
		playerOrder = append(playerOrder, id)
	}
	if len(players) == 0 {
		return nil, nil, &SpecError{Code: CodeBadPlayer, Message: "no players defined", Pos: playersVal.Pos()}
	}
	return players, playerOrder, nil
}

// compilePayoffs decodes the per-metric payoff tables and verifies every
// action tuple of the full profile product is priced.
func compilePayoffs(v cue.Value, metrics []string, players []game.Player, playerOrder []string) ([]game.Metric, error) {
	payoffsVal := v.LookupPath(cue.ParsePath("payoffs"))
	if !payoffsVal.Exists() {
		return nil, &SpecError{Code: CodeBadPayoffs, Message: "missing payoffs struct", Pos: v.Pos()}
	}
	var tables map[string]map[string]float64
	if err := payoffsVal.Decode(&tables); err != nil {
		return nil, &SpecError{Code: CodeBadPayoffs, Message: fmt.Sprintf("decoding payoffs: %v", err), Pos: payoffsVal.Pos()}
	}

	tuples := actionTuples(players)
	out := make([]game.Metric, 0, len(metrics))
	for _, name := range metrics {
		table, ok := tables[name]
		if !ok {
			return nil, &SpecError{Code: CodeBadPayoffs, Message: fmt.Sprintf("no payoff table for metric %q", name), Pos: payoffsVal.Pos()}
		}
		for _, tuple := range tuples {
			if _, ok := table[tuple]; !ok {
				return nil, &SpecError{Code: CodeBadPayoffs, Message: fmt.Sprintf("metric %q: no payoff for action tuple %q", name, tuple), Pos: payoffsVal.Pos()}
			}
		}
		out = append(out, tableMetric(name, playerOrder, table))
	}
	return out, nil
}

// actionTuples enumerates the comma-joined action combinations in player
// declaration order.
func actionTuples(players []game.Player) []string {
	tuples := []string{""}
	for i, p := range players {
		next := make([]string, 0, len(tuples)*len(p.Actions))
		for _, prefix := range tuples {
			for _, a := range p.Actions {
				if i == 0 {
					next = append(next, a)
				} else {
					next = append(next, prefix+","+a)
				}
			}
		}
		tuples = next
	}
	return tuples
}

// tableMetric builds a metric whose outcome is a table lookup keyed by the
// comma-joined actions of the players in declaration order.
func tableMetric(name string, playerOrder []string, table map[string]float64) game.Metric {
	return game.Metric{
		Name: name,
		Outcome: func(p game.Profile) float64 {
			parts := make([]string, len(playerOrder))
			for i, pid := range playerOrder {
				parts[i], _ = p.Action(pid)
			}
			return table[strings.Join(parts, ",")]
		},
	}
}
