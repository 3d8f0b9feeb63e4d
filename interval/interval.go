// Package interval implements an ordered, non-overlapping interval map
// ("bumpy vector"): a sorted collection of disjoint [start, start+length)
// ranges, each holding a payload, bounded by a fixed capacity.
package interval

import (
	"fmt"
	"sort"

	"github.com/h2gb/h2core/errs"
)

// Entry is one occupied range and its payload.
type Entry[T any] struct {
	Start   int
	Length  int
	Payload T
}

// End returns the half-open range's exclusive end offset.
func (e Entry[T]) End() int { return e.Start + e.Length }

// Map is a sorted, non-overlapping interval map with a fixed capacity.
//
// The zero value is not usable; construct one with New.
type Map[T any] struct {
	capacity int
	entries  []Entry[T] // sorted by Start, pairwise disjoint
}

// New creates an empty Map bounded by capacity (typically a buffer's
// byte length).
func New[T any](capacity int) *Map[T] {
	return &Map[T]{capacity: capacity}
}

// Capacity returns the map's declared capacity.
func (m *Map[T]) Capacity() int { return m.capacity }

// Len returns the number of entries currently stored.
func (m *Map[T]) Len() int { return len(m.entries) }

// search returns the index of the first entry whose Start is >= start.
func (m *Map[T]) search(start int) int {
	return sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Start >= start })
}

// Insert adds an entry covering [start, start+length). It fails with
// errs.ErrOverlappingEntry if any byte in that range is already covered,
// or if the range would exceed the map's capacity.
func (m *Map[T]) Insert(start, length int, payload T) error {
	if length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", errs.ErrOverlappingEntry, length)
	}

	end := start + length
	if start < 0 || end > m.capacity {
		return fmt.Errorf("%w: range [%d,%d) exceeds capacity %d", errs.ErrOverlappingEntry, start, end, m.capacity)
	}

	idx := m.search(start)

	// The new range can only collide with its immediate neighbors, since
	// the slice is sorted and pairwise disjoint.
	if idx > 0 && m.entries[idx-1].End() > start {
		return fmt.Errorf("%w: [%d,%d) overlaps existing [%d,%d)", errs.ErrOverlappingEntry, start, end, m.entries[idx-1].Start, m.entries[idx-1].End())
	}

	if idx < len(m.entries) && m.entries[idx].Start < end {
		return fmt.Errorf("%w: [%d,%d) overlaps existing [%d,%d)", errs.ErrOverlappingEntry, start, end, m.entries[idx].Start, m.entries[idx].End())
	}

	entry := Entry[T]{Start: start, Length: length, Payload: payload}

	m.entries = append(m.entries, Entry[T]{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = entry

	return nil
}

// Get returns the entry covering offset, if any.
func (m *Map[T]) Get(offset int) (Entry[T], bool) {
	idx := m.indexCovering(offset)
	if idx < 0 {
		return Entry[T]{}, false
	}

	return m.entries[idx], true
}

// indexCovering returns the index of the entry covering offset, or -1.
func (m *Map[T]) indexCovering(offset int) int {
	idx := m.search(offset + 1) // first entry with Start > offset
	if idx == 0 {
		return -1
	}

	candidate := m.entries[idx-1]
	if candidate.Start <= offset && offset < candidate.End() {
		return idx - 1
	}

	return -1
}

// Remove removes and returns the entry covering offset, if any.
func (m *Map[T]) Remove(offset int) (Entry[T], bool) {
	idx := m.indexCovering(offset)
	if idx < 0 {
		return Entry[T]{}, false
	}

	e := m.entries[idx]
	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)

	return e, true
}

// GetRange returns every entry intersecting [start, end), in Start order.
func (m *Map[T]) GetRange(start, end int) []Entry[T] {
	var out []Entry[T]

	for _, e := range m.entries {
		if e.Start < end && start < e.End() {
			out = append(out, e)
		}
	}

	return out
}

// RemoveRange removes and returns every entry intersecting [start, end),
// in Start order.
func (m *Map[T]) RemoveRange(start, end int) []Entry[T] {
	var removed []Entry[T]

	kept := m.entries[:0]

	for _, e := range m.entries {
		if e.Start < end && start < e.End() {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}

	m.entries = kept

	return removed
}

// Iter returns every entry in ascending Start order. The returned slice
// must not be mutated by the caller.
func (m *Map[T]) Iter() []Entry[T] {
	return m.entries
}
