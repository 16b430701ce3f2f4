// Package learning estimates players' hidden priority orders from observed
// play.
//
// A Belief is a normalized weight distribution over candidate partial
// orders, keyed by order content key. Update applies a multiplicative Bayes
// step; a round whose likelihoods wipe out all mass is reported as a
// ZeroMassError so callers can tell an inconsistent observation apart from
// ordinary non-convergence.
//
// Session is the single-observer loop: it watches one player, scores each
// candidate order by whether the observed action is consistent with an
// admissible undominated equilibrium of the game with that candidate
// substituted in, and folds the scores into the belief in either
// probability mode (multiplicative update) or max mode (winner take all,
// ties split evenly).
//
// Framework runs the full multi-agent loop: every player simultaneously
// chooses an action by weighted voting over the others' candidate
// preference profiles, then every belief is updated from the joint action
// actually played. Equilibrium sets are memoized by preference-profile
// content key, so repeated rounds over the same candidate combinations pay
// for equilibrium search once.
//
// Flat or oscillating beliefs are valid outcomes. Convergence is a
// threshold query, never an error.
package learning
