package engine

import (
	"errors"
	"fmt"
	"sort"
)

// MaxEnemies is the roster capacity.
const MaxEnemies = 3

// ErrRosterFull reports more spawn entries than MaxEnemies.
var ErrRosterFull = errors.New("engine: roster over capacity")

// Roster is the enemy set of a level. Entries are kept sorted by ascending
// lane. The last marker points at the current opponent: entries before it
// are still standing, entries after it have been defeated and are skipped.
type Roster struct {
	spawn [MaxEnemies]Entity
	live  [MaxEnemies]Entity
	n     int
	last  int
}

// NewRoster copies the spawn entries, sorts them by lane and resets.
func NewRoster(spawn ...Entity) (Roster, error) {
	if len(spawn) > MaxEnemies {
		return Roster{}, fmt.Errorf("%w: %d entries, max %d", ErrRosterFull, len(spawn), MaxEnemies)
	}
	r := Roster{n: len(spawn)}
	copy(r.spawn[:], spawn)
	sort.SliceStable(r.spawn[:r.n], func(i, j int) bool {
		return r.spawn[i].Lane < r.spawn[j].Lane
	})
	r.Reset()
	return r, nil
}

// Reset restores every enemy to its spawn entry and points the marker at
// the last one.
func (r *Roster) Reset() {
	r.live = r.spawn
	r.last = r.n - 1
}

// Len returns the roster size.
func (r *Roster) Len() int { return r.n }

// Remaining returns how many enemies are still standing.
func (r *Roster) Remaining() int { return r.last + 1 }

// Cleared reports whether every enemy has been defeated.
func (r *Roster) Cleared() bool { return r.last < 0 }

// Current returns the opponent under the marker, or nil when cleared.
func (r *Roster) Current() *Entity {
	if r.last < 0 {
		return nil
	}
	return &r.live[r.last]
}

// Defeat moves the marker to the previous enemy and returns the new
// current one, nil when the roster is cleared.
func (r *Roster) Defeat() *Entity {
	if r.last >= 0 {
		r.live[r.last].Deactivate()
		r.last--
	}
	return r.Current()
}

// Each visits enemies in lane order up to and including the marker.
func (r *Roster) Each(fn func(e *Entity, current bool)) {
	for i := 0; i <= r.last; i++ {
		fn(&r.live[i], i == r.last)
	}
}
