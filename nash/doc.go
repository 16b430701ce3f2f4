// Package nash finds pure equilibria of posetal games under four-valued
// preference comparison.
//
// Two solution concepts are provided. FindPureNash uses the strict reading:
// a profile qualifies only when every player weakly prefers it to every
// unilateral deviation, so a deviation the player cannot rank disqualifies
// the profile. FindAdmissible uses the permissive reading: a profile is
// rejected only when some player strictly prefers a unilateral deviation,
// so incomparable deviations are tolerated. Every pure Nash profile is
// admissible; the converse fails exactly when incomparability appears among
// a player's deviations.
//
// Undominated filters a profile set down to the profiles no other member
// weakly improves for every player and strictly improves for at least one.
// FindAdmissibleUndominated composes the two and is the solution concept the
// learning package scores candidate orders against.
//
// All finders walk the game's profile enumeration order and return results
// in that order, so repeated runs over equal games agree element for
// element.
package nash
