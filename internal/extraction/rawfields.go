package extraction

import (
	"finlens/internal/parsing"
)

// RawFields is the transient label→value map populated by the extraction
// strategies. Keys are stored in normalized form and in insertion order, and
// insertion is first-writer-wins: a later strategy never overwrites a value
// recorded by an earlier one.
type RawFields struct {
	keys   []string
	values map[string]float64
}

// NewRawFields returns an empty raw field map.
func NewRawFields() *RawFields {
	return &RawFields{values: make(map[string]float64)}
}

// Put records value under the normalized form of label unless that key is
// already present. It reports whether the value was inserted.
func (m *RawFields) Put(label string, value float64) bool {
	key := parsing.NormalizeKey(label)
	if key == "" {
		return false
	}
	if _, exists := m.values[key]; exists {
		return false
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return true
}

// Get returns the value recorded under the normalized form of label.
func (m *RawFields) Get(label string) (float64, bool) {
	v, ok := m.values[parsing.NormalizeKey(label)]
	return v, ok
}

// Keys returns the normalized keys in insertion order. The slice is shared,
// callers must not mutate it.
func (m *RawFields) Keys() []string {
	return m.keys
}

// Len returns the number of recorded fields.
func (m *RawFields) Len() int {
	return len(m.keys)
}

// Sample returns up to n keys in insertion order, for diagnostic messages.
func (m *RawFields) Sample(n int) []string {
	if len(m.keys) <= n {
		return m.keys
	}
	return m.keys[:n]
}
