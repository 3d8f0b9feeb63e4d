package project

import (
	"fmt"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/interval"
)

// Layer is a named annotation stream: an IntervalMap of Entries keyed by
// their aligned range, plus a sparse offset-to-comment map. An entry's key
// range is always its aligned range, not its base range.
type Layer struct {
	name     string
	entries  *interval.Map[Entry]
	comments map[int]string
}

// NewLayer creates an empty layer over a byte range of the given capacity
// (normally the owning buffer's length).
func NewLayer(name string, capacity int) *Layer {
	return &Layer{
		name:     name,
		entries:  interval.New[Entry](capacity),
		comments: make(map[int]string),
	}
}

// Name returns the layer's name.
func (l *Layer) Name() string { return l.name }

// Len returns the number of entries currently in the layer.
func (l *Layer) Len() int { return l.entries.Len() }

// IsPopulated reports whether the layer owns any entries. Buffers refuse to
// delete a layer for which this is true unless the layer is saved for undo.
func (l *Layer) IsPopulated() bool { return l.Len() > 0 }

// EntryInsert adds an entry keyed by its resolved aligned range. It fails
// with errs.ErrOverlappingEntry if any byte in that range is already owned.
func (l *Layer) EntryInsert(e Entry) error {
	start := e.Resolved.AlignedStart
	length := e.Resolved.AlignedSize()
	if length == 0 {
		length = 1 // zero-length entries (empty arrays) still occupy their point offset
	}

	return l.entries.Insert(start, length, e)
}

// EntryRemove removes and returns the entry whose range covers offset.
func (l *Layer) EntryRemove(offset int) (Entry, bool) {
	entry, ok := l.entries.Remove(offset)
	if !ok {
		return Entry{}, false
	}

	return entry.Payload, true
}

// EntryGet returns the entry whose range covers offset, if any.
func (l *Layer) EntryGet(offset int) (Entry, bool) {
	entry, ok := l.entries.Get(offset)
	if !ok {
		return Entry{}, false
	}

	return entry.Payload, true
}

// EntriesInRange returns every entry whose range intersects [start, end).
func (l *Layer) EntriesInRange(start, end int) []Entry {
	raw := l.entries.GetRange(start, end)
	out := make([]Entry, len(raw))
	for i, e := range raw {
		out[i] = e.Payload
	}

	return out
}

// CommentGet returns the comment at offset, if one is set.
func (l *Layer) CommentGet(offset int) (string, bool) {
	c, ok := l.comments[offset]
	return c, ok
}

// CommentSet sets the comment at offset and returns the previous value, if
// any; an empty comment clears the offset's comment instead of storing "".
// It fails with errs.ErrOutOfBounds if offset is outside the layer's
// declared capacity.
func (l *Layer) CommentSet(offset int, comment string) (string, error) {
	if offset < 0 || offset >= l.entries.Capacity() {
		return "", fmt.Errorf("%w: comment offset %d outside layer capacity %d", errs.ErrOutOfBounds, offset, l.entries.Capacity())
	}

	prev := l.comments[offset]
	if comment == "" {
		delete(l.comments, offset)
	} else {
		l.comments[offset] = comment
	}

	return prev, nil
}

// CommentRemove deletes the comment at offset and returns its previous
// value, if any.
func (l *Layer) CommentRemove(offset int) (string, bool) {
	prev, ok := l.comments[offset]
	delete(l.comments, offset)

	return prev, ok
}
