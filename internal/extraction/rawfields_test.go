package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawFieldsFirstWriterWins(t *testing.T) {
	m := NewRawFields()

	assert.True(t, m.Put("Запасы", 100))
	assert.False(t, m.Put("запасы", 999), "normalized duplicate must not overwrite")

	v, ok := m.Get("ЗАПАСЫ")
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)
}

func TestRawFieldsInsertionOrder(t *testing.T) {
	m := NewRawFields()
	m.Put("Баланс", 1)
	m.Put("Запасы", 2)
	m.Put("Капитал", 3)

	assert.Equal(t, []string{"баланс", "запасы", "капитал"}, m.Keys())
	assert.Equal(t, []string{"баланс", "запасы"}, m.Sample(2))
	assert.Equal(t, 3, m.Len())
}

func TestRawFieldsRejectsEmptyKey(t *testing.T) {
	m := NewRawFields()
	assert.False(t, m.Put("---", 1), "label that normalizes to nothing is dropped")
	assert.Equal(t, 0, m.Len())
}
