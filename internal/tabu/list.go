// Package tabu provides the fixed-capacity tabu list the Tabu Search
// driver consults to forbid immediately reversing a recent move.
package tabu

import "localsearch/internal/move"

// List is a fixed-capacity store of recently-forbidden moves, keyed by
// TabuMove.Hash() with expiry tracked per slot. It is implemented as a
// ring buffer of hashes plus a map from hash to expiry iteration,
// exactly as internal/ts's tabuList did for raw (job, from, to) keys —
// generalized here to any move.TabuMove.
type List struct {
	byHash map[uint64]tabuEntry
	ring   []ringSlot
	cursor int
}

type tabuEntry struct {
	move   move.TabuMove
	expiry int
}

type ringSlot struct {
	hash     uint64
	expiry   int
	occupied bool
}

// NewList builds a tabu list with the given capacity (minimum 8, same
// floor internal/ts used).
func NewList(capacity int) *List {
	if capacity < 8 {
		capacity = 8
	}
	return &List{
		byHash: make(map[uint64]tabuEntry, capacity*2),
		ring:   make([]ringSlot, capacity),
	}
}

// IsTabu reports whether m is forbidden at the given iteration: its hash
// is present, its stored move structurally equals m (hash collisions
// between distinct moves are not tabu for each other), and its expiry is
// still in the future.
func (l *List) IsTabu(m move.TabuMove, iteration int) bool {
	entry, ok := l.byHash[m.Hash()]
	if !ok {
		return false
	}
	return entry.expiry > iteration && entry.move.Equals(m)
}

// Add inserts m (cloned, so the list owns an independent copy) into the
// list with the given expiry iteration, evicting whatever occupied the
// oldest ring slot.
func (l *List) Add(m move.TabuMove, expiry int) {
	old := l.ring[l.cursor]
	if old.occupied {
		// Only delete the map entry if it still belongs to the slot
		// being evicted: a later Add for the same hash may already
		// have overwritten it from a different ring slot.
		if cur, ok := l.byHash[old.hash]; ok && cur.expiry == old.expiry {
			delete(l.byHash, old.hash)
		}
	}

	h := m.Hash()
	l.byHash[h] = tabuEntry{move: m.Clone(), expiry: expiry}
	l.ring[l.cursor] = ringSlot{hash: h, expiry: expiry, occupied: true}

	l.cursor++
	if l.cursor >= len(l.ring) {
		l.cursor = 0
	}
}
