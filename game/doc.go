// Package game models posetal games: finite pure-strategy games in which
// each player ranks outcomes not by a scalar utility but by a partial order
// induced from a priority order over metrics.
//
// A Game owns an immutable roster of players, a shared metric set, and the
// full enumeration of action profiles (the product of all players' action
// sets). At construction the game evaluates every metric at every profile
// (proving the outcome functions total) and derives, per player, the induced
// pre-order over profiles:
//
//	X <= Y for player p  iff  every metric where X beats Y sits strictly
//	below, in p's priority order, some metric where Y beats X.
//
// Metrics that are incomparable in the priority order and disagree in
// direction make the two profiles incomparable. The induced relation is a
// pre-order, not a total order; four-valued comparison results flow through
// everything built on top (best responses, equilibrium search, learning).
//
// All profile enumeration and derived sets use a fixed deterministic order:
// players in declaration order, actions sorted, profiles in product order.
package game
