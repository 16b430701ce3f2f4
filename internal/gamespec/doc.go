// Package gamespec loads posetal game definitions from CUE files.
//
// A definition is a top-level `game` struct: a `metrics` name list, a
// `players` struct whose field order fixes the player order, and a
// `payoffs` table per metric keyed by the comma-joined action tuple.
// Player priority orders are given as [low, high] pairs over the metric
// names; the pair [a, b] states that metric a matters strictly less than
// metric b.
//
//	game: {
//		metrics: ["cost", "time"]
//		players: {
//			P1: {actions: ["A", "B"], priority: [["time", "cost"]]}
//			P2: {actions: ["A", "B"], priority: [["cost", "time"]]}
//		}
//		payoffs: {
//			cost: {"A,A": 2, "A,B": 0, "B,A": 0, "B,B": 1}
//			time: {"A,A": 1, "A,B": 0, "B,A": 0, "B,B": 2}
//		}
//	}
//
// Load validates the definition completely (every metric named, every
// action tuple priced, every priority pair a partial order) before handing
// a compiled *game.Game back, so a loaded game never fails construction
// later.
package gamespec
