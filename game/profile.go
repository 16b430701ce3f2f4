package game

import (
	"maps"
	"strings"

	"github.com/posetal/posetal/internal/canon"
)

// Profile assigns one action to every player. Profiles are immutable values;
// Key returns a canonical serialization usable as a map key and as a ground
// element in induced orders.
type Profile struct {
	actions map[string]string
	key     string
}

// NewProfile builds a profile from a player->action assignment. The map is
// copied.
func NewProfile(actions map[string]string) Profile {
	copied := maps.Clone(actions)
	obj := make(map[string]any, len(copied))
	for pid, a := range copied {
		obj[pid] = a
	}
	data, err := canon.MarshalCanonical(obj)
	if err != nil {
		// Player IDs and actions are strings; canonical marshaling
		// cannot fail on them.
		panic(err)
	}
	return Profile{actions: copied, key: string(data)}
}

// Action returns the action assigned to the given player.
func (p Profile) Action(playerID string) (string, bool) {
	a, ok := p.actions[playerID]
	return a, ok
}

// Key returns the canonical JSON form of the assignment, e.g.
// {"P1":"A","P2":"B"}. Equal assignments share a key.
func (p Profile) Key() string { return p.key }

// Len returns the number of players in the assignment.
func (p Profile) Len() int { return len(p.actions) }

// Assignment returns a copy of the underlying player->action map.
func (p Profile) Assignment() map[string]string {
	return maps.Clone(p.actions)
}

// With returns a copy of the profile with one player's action replaced.
func (p Profile) With(playerID, action string) Profile {
	next := maps.Clone(p.actions)
	next[playerID] = action
	return NewProfile(next)
}

func (p Profile) String() string {
	var b strings.Builder
	for i, pid := range canon.SortedKeys(p.actions) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(pid)
		b.WriteByte('=')
		b.WriteString(p.actions[pid])
	}
	return b.String()
}
