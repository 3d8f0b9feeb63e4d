package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRejectsOverlap(t *testing.T) {
	m := New[string](100)

	require.NoError(t, m.Insert(10, 5, "a"))

	err := m.Insert(12, 5, "b")
	require.Error(t, err)
}

func TestInsertRejectsBeyondCapacity(t *testing.T) {
	m := New[string](10)

	err := m.Insert(8, 5, "a")
	require.Error(t, err)
}

func TestInsertAdjacentDoesNotOverlap(t *testing.T) {
	m := New[string](100)

	require.NoError(t, m.Insert(0, 5, "a"))
	require.NoError(t, m.Insert(5, 5, "b"))

	assert.Equal(t, 2, m.Len())
}

func TestGetCoveringOffset(t *testing.T) {
	m := New[string](100)
	require.NoError(t, m.Insert(10, 5, "x"))

	e, ok := m.Get(12)
	require.True(t, ok)
	assert.Equal(t, "x", e.Payload)

	_, ok = m.Get(20)
	assert.False(t, ok)
}

func TestRemoveReturnsEntry(t *testing.T) {
	m := New[string](100)
	require.NoError(t, m.Insert(10, 5, "x"))

	e, ok := m.Remove(12)
	require.True(t, ok)
	assert.Equal(t, "x", e.Payload)
	assert.Equal(t, 0, m.Len())
}

func TestRemoveRangeIntersecting(t *testing.T) {
	m := New[string](100)
	require.NoError(t, m.Insert(0, 5, "a"))
	require.NoError(t, m.Insert(10, 5, "b"))
	require.NoError(t, m.Insert(20, 5, "c"))

	removed := m.RemoveRange(4, 21)
	assert.Len(t, removed, 3)
	assert.Equal(t, 0, m.Len())
}

func TestIterIsOrderedByStart(t *testing.T) {
	m := New[string](100)
	require.NoError(t, m.Insert(20, 5, "c"))
	require.NoError(t, m.Insert(0, 5, "a"))
	require.NoError(t, m.Insert(10, 5, "b"))

	starts := make([]int, 0, 3)
	for _, e := range m.Iter() {
		starts = append(starts, e.Start)
	}

	assert.Equal(t, []int{0, 10, 20}, starts)
}
