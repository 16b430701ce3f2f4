package game

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/posetal/posetal/internal/canon"
	"github.com/posetal/posetal/order"
)

// Metric is one named dimension of outcome evaluation. Outcome must be total
// over the game's profile space; New verifies this by evaluating every
// profile up front.
type Metric struct {
	Name    string
	Outcome func(Profile) float64
}

// Player is an identity with an action set and a priority order over the
// game's shared metric names.
type Player struct {
	ID         string
	Actions    []string
	Preference *order.PartialOrder
}

// Game is an immutable posetal game: players, shared metrics, the enumerated
// profile space, the precomputed metric table, and each player's induced
// pre-order over profiles.
type Game struct {
	players  []Player
	byID     map[string]int
	metrics  []Metric
	names    []string // sorted metric names
	profiles []Profile
	byKey    map[string]Profile
	values   map[string]map[string]float64 // profile key -> metric name -> value
	induced  map[string]*order.PreOrder    // player ID -> pre-order over profile keys
	key      string
}

// New constructs a Game, validating the whole configuration before anything
// escapes: non-empty player roster with unique IDs, non-empty sorted action
// sets, unique metric names, player preferences defined over exactly the
// shared metric names, and outcome functions total (and finite) over the
// full profile product.
func New(players []Player, metrics []Metric) (*Game, error) {
	if len(players) == 0 {
		return nil, &InvalidGameError{Reason: "no players"}
	}
	if len(metrics) == 0 {
		return nil, &InvalidGameError{Reason: "no metrics"}
	}

	names := make([]string, 0, len(metrics))
	for _, m := range metrics {
		if m.Name == "" {
			return nil, &InvalidGameError{Reason: "metric with empty name"}
		}
		if m.Outcome == nil {
			return nil, &InvalidGameError{Reason: fmt.Sprintf("metric %q has no outcome function", m.Name)}
		}
		names = append(names, m.Name)
	}
	slices.Sort(names)
	if len(slices.Compact(slices.Clone(names))) != len(names) {
		return nil, &InvalidGameError{Reason: "duplicate metric names"}
	}

	g := &Game{
		byID:    make(map[string]int, len(players)),
		metrics: metrics,
		names:   names,
	}

	for _, p := range players {
		if p.ID == "" {
			return nil, &InvalidGameError{Reason: "player with empty ID"}
		}
		if _, dup := g.byID[p.ID]; dup {
			return nil, &InvalidGameError{PlayerID: p.ID, Reason: "duplicate player ID"}
		}
		if len(p.Actions) == 0 {
			return nil, &InvalidGameError{PlayerID: p.ID, Reason: "empty action set", Err: &EmptyActionSpaceError{PlayerID: p.ID}}
		}
		if p.Preference == nil {
			return nil, &InvalidGameError{PlayerID: p.ID, Reason: "missing preference order"}
		}
		if !slices.Equal(p.Preference.Elements(), names) {
			return nil, &InvalidGameError{PlayerID: p.ID, Reason: "preference must be defined over exactly the shared metric names"}
		}

		actions := slices.Clone(p.Actions)
		slices.Sort(actions)
		actions = slices.Compact(actions)
		g.byID[p.ID] = len(g.players)
		g.players = append(g.players, Player{ID: p.ID, Actions: actions, Preference: p.Preference})
	}

	g.profiles = enumerateProfiles(g.players)
	g.byKey = make(map[string]Profile, len(g.profiles))
	for _, pr := range g.profiles {
		g.byKey[pr.Key()] = pr
	}

	// Evaluating every metric at every profile both fills the value table
	// and proves the outcome functions total.
	g.values = make(map[string]map[string]float64, len(g.profiles))
	for _, pr := range g.profiles {
		row := make(map[string]float64, len(metrics))
		for _, m := range g.metrics {
			v := m.Outcome(pr)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &InvalidGameError{Reason: fmt.Sprintf("metric %q is not finite at profile %s", m.Name, pr)}
			}
			row[m.Name] = v
		}
		g.values[pr.Key()] = row
	}

	g.induced = make(map[string]*order.PreOrder, len(g.players))
	for _, p := range g.players {
		pre, err := g.inducedPreorder(p, g.profiles)
		if err != nil {
			return nil, err
		}
		g.induced[p.ID] = pre
	}

	return g, nil
}

// enumerateProfiles walks the product of all players' action sets, players
// in declaration order, actions sorted, so the profile order is stable.
func enumerateProfiles(players []Player) []Profile {
	assignment := make(map[string]string, len(players))
	var out []Profile
	var walk func(i int)
	walk = func(i int) {
		if i == len(players) {
			out = append(out, NewProfile(assignment))
			return
		}
		for _, a := range players[i].Actions {
			assignment[players[i].ID] = a
			walk(i + 1)
		}
		delete(assignment, players[i].ID)
	}
	walk(0)
	return out
}

// Players returns the roster in declaration order.
func (g *Game) Players() []Player { return slices.Clone(g.players) }

// Player returns the player with the given ID.
func (g *Game) Player(id string) (Player, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Player{}, false
	}
	return g.players[i], true
}

// MetricNames returns the sorted shared metric names.
func (g *Game) MetricNames() []string { return slices.Clone(g.names) }

// Profiles returns every action profile in enumeration order.
func (g *Game) Profiles() []Profile { return slices.Clone(g.profiles) }

// Evaluate returns the metric vector for a profile as a copy of the
// precomputed row. The profile must belong to this game's profile space.
func (g *Game) Evaluate(p Profile) (map[string]float64, error) {
	row, ok := g.values[p.Key()]
	if !ok {
		return nil, &InvalidGameError{Reason: fmt.Sprintf("profile %s is not in this game's profile space", p)}
	}
	out := make(map[string]float64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out, nil
}

// InducedPreorder returns the player's induced pre-order over profile keys.
func (g *Game) InducedPreorder(playerID string) (*order.PreOrder, error) {
	pre, ok := g.induced[playerID]
	if !ok {
		return nil, &InvalidGameError{PlayerID: playerID, Reason: "unknown player"}
	}
	return pre, nil
}

// Key returns a stable content key for the game: players, action sets,
// preference keys, and the full metric table. Float values are formatted as
// shortest round-trip decimal strings before hashing.
func (g *Game) Key() string {
	if g.key != "" {
		return g.key
	}

	playerObjs := make([]any, len(g.players))
	for i, p := range g.players {
		playerObjs[i] = map[string]any{
			"id":         p.ID,
			"actions":    p.Actions,
			"preference": p.Preference.Key(),
		}
	}
	table := make(map[string]any, len(g.values))
	for pk, row := range g.values {
		rowObj := make(map[string]any, len(row))
		for name, v := range row {
			rowObj[name] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		table[pk] = rowObj
	}

	key, err := canon.Key(canon.DomainGame, map[string]any{
		"players": playerObjs,
		"metrics": g.names,
		"table":   table,
	})
	if err != nil {
		panic(err)
	}
	g.key = key
	return key
}

// WithPreferences derives a new game in which the listed players carry the
// given priority orders; players absent from the map keep their current
// order. Metric tables are recomputed through the same validation path.
func (g *Game) WithPreferences(prefs map[string]*order.PartialOrder) (*Game, error) {
	players := make([]Player, len(g.players))
	for i, p := range g.players {
		next := p
		if pref, ok := prefs[p.ID]; ok {
			next.Preference = pref
		}
		players[i] = next
	}
	return New(players, g.metrics)
}
