package hashindex

import (
	"fmt"
	"iter"
)

// Table is a linear-probing hash table keyed by string.
//
// Invariants:
//   - No two used slots hold the same key.
//   - After every Insert, n/cap <= 3/4, so at least one slot is empty and
//     every probe sequence terminates.
//   - An empty slot ends a search: no key lives past an empty slot on its
//     own probe sequence. Delete keeps this without tombstones, either by a
//     full rebuild (shrink) or by re-seating the rest of the cluster.
//
// Table is not safe for concurrent use.
type Table[V any] struct {
	slots []slot[V]
	n     int
	opts  options
}

// New creates a Table with the given initial capacity.
func New[V any](capacity int, opts ...Option) (*Table[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	t := &Table[V]{slots: make([]slot[V], capacity)}
	for _, opt := range opts {
		opt(&t.opts)
	}

	return t, nil
}

// Hash returns the home slot of key in a table of the given capacity: the
// sum of the key's UTF-8 bytes modulo capacity.
func Hash(key string, capacity int) int {
	sum := 0
	for i := 0; i < len(key); i++ {
		sum += int(key[i])
	}

	return sum % capacity
}

// Insert stores value under key, overwriting any previous value.
//
// The ceiling check runs before probing and counts the key as new even when
// it is an overwrite, so an update can trigger a grow.
//
// Complexity: O(1) expected; O(n) when it grows.
func (t *Table[V]) Insert(key string, value V) {
	if growDen*(t.n+1) > growNum*len(t.slots) {
		t.resize(2 * len(t.slots))
	}
	i := t.probe(key)
	if !t.slots[i].used {
		t.n++
	}
	t.slots[i] = slot[V]{key: key, value: value, used: true}
}

// Search returns the value stored under key.
func (t *Table[V]) Search(key string) (V, bool) {
	if i, ok := t.find(key); ok {
		return t.slots[i].value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether key is stored.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.find(key)
	return ok
}

// SlotOf returns the slot currently holding key.
func (t *Table[V]) SlotOf(key string) (int, bool) {
	return t.find(key)
}

// Delete removes key and reports whether it was present.
//
// When the load factor drops below 1/2 on a table larger than one slot, the
// table is rebuilt at half capacity (at least 1). Otherwise the entries that
// follow the blanked slot in its cluster are re-seated so none of them sits
// behind a new gap.
//
// Complexity: O(cluster) expected; O(n) when it shrinks.
func (t *Table[V]) Delete(key string) bool {
	i, ok := t.find(key)
	if !ok {
		return false
	}
	t.slots[i] = slot[V]{}
	t.n--

	if shrinkDen*t.n < shrinkNum*len(t.slots) && len(t.slots) > 1 {
		t.resize(max(1, len(t.slots)/2))
		return true
	}
	t.reseat(i)

	return true
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int { return t.n }

// Cap returns the current number of slots.
func (t *Table[V]) Cap() int { return len(t.slots) }

// LoadFactor returns Len()/Cap().
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.n) / float64(len(t.slots))
}

// Entries returns every occupied slot in slot order.
func (t *Table[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, t.n)
	for i, s := range t.slots {
		if s.used {
			out = append(out, Entry[V]{Slot: i, Key: s.key, Value: s.value})
		}
	}

	return out
}

// Keys returns the stored keys in slot order.
func (t *Table[V]) Keys() []string {
	out := make([]string, 0, t.n)
	for k := range t.All() {
		out = append(out, k)
	}

	return out
}

// All yields key/value pairs in slot order. The table must not be mutated
// during iteration.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, s := range t.slots {
			if s.used && !yield(s.key, s.value) {
				return
			}
		}
	}
}

// probe returns the slot holding key, or the first empty slot on key's
// probe sequence (h, h+1, h+2, ... mod cap).
func (t *Table[V]) probe(key string) int {
	c := len(t.slots)
	h := Hash(key, c)
	for k := 0; k < c; k++ {
		i := (h + k) % c
		if !t.slots[i].used || t.slots[i].key == key {
			return i
		}
	}
	// unreachable while n < cap
	panic("hashindex: probe found no free slot")
}

// find walks key's probe sequence until a match or an empty slot.
func (t *Table[V]) find(key string) (int, bool) {
	c := len(t.slots)
	h := Hash(key, c)
	for k := 0; k < c; k++ {
		i := (h + k) % c
		switch {
		case !t.slots[i].used:
			return -1, false
		case t.slots[i].key == key:
			return i, true
		}
	}

	return -1, false
}

// resize rebuilds the table at capacity c by re-inserting every entry in old
// slot order. Re-insertion goes through Insert, so a rebuild that crosses the
// ceiling grows again before it finishes.
func (t *Table[V]) resize(c int) {
	if t.opts.onResize != nil {
		t.opts.onResize(len(t.slots), c)
	}
	old := t.slots
	t.slots = make([]slot[V], c)
	t.n = 0
	for _, s := range old {
		if s.used {
			t.Insert(s.key, s.value)
		}
	}
}

// reseat re-inserts each entry after the gap at i up to the next empty slot.
// Each entry lands at or before its current slot, so the walk never revisits
// a moved entry.
func (t *Table[V]) reseat(i int) {
	c := len(t.slots)
	for j := (i + 1) % c; t.slots[j].used; j = (j + 1) % c {
		s := t.slots[j]
		t.slots[j] = slot[V]{}
		t.slots[t.probe(s.key)] = s
	}
}
