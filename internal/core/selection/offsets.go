package selection

import (
	"maps"
	"slices"
)

// OffsetMap records where each section letter of the jump bar was laid out,
// keyed by section index. The host fills it one letter at a time as layout
// happens, so at any moment it may be partial.
//
// Not safe for concurrent use; the owning Session serialises access.
type OffsetMap struct {
	generation uint64
	data       map[int]float64
}

// NewOffsetMap creates an empty map for generation 0.
func NewOffsetMap() *OffsetMap {
	return &OffsetMap{data: make(map[int]float64)}
}

// Set records the position of section k.
func (m *OffsetMap) Set(k int, y float64) {
	m.data[k] = y
}

// Get returns the position of section k.
func (m *OffsetMap) Get(k int) (float64, bool) {
	y, ok := m.data[k]
	return y, ok
}

// Len returns the number of known positions.
func (m *OffsetMap) Len() int {
	return len(m.data)
}

// Keys returns the known section indexes in ascending order.
func (m *OffsetMap) Keys() []int {
	return slices.Sorted(maps.Keys(m.data))
}

// Generation returns the plan generation the positions were reported for.
func (m *OffsetMap) Generation() uint64 {
	return m.generation
}

// Reset drops every position and retags the map for a new plan generation.
func (m *OffsetMap) Reset(generation uint64) {
	m.generation = generation
	clear(m.data)
}
