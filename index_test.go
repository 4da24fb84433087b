package genalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	t.Run("Equality", func(t *testing.T) {
		assert.Equal(t, NewIndex[uint64, uint64](0, 0), NewIndex[uint64, uint64](0, 0))
		assert.NotEqual(t, NewIndex[uint64, uint64](0, 0), NewIndex[uint64, uint64](0, 1))
		assert.NotEqual(t, NewIndex[uint64, uint64](0, 0), NewIndex[uint64, uint64](1, 0))
		assert.NotEqual(t, NewIndex[uint64, uint64](0, 1), NewIndex[uint64, uint64](1, 0))
	})

	t.Run("Accessors", func(t *testing.T) {
		idx := NewIndex[uint32, uint16](7, 3)
		assert.Equal(t, uint32(7), idx.Slot())
		assert.Equal(t, uint16(3), idx.Generation())
	})

	t.Run("MapKey", func(t *testing.T) {
		table := map[Index[uint64, uint64]]string{}

		table[NewIndex[uint64, uint64](0, 0)] = "old"
		table[NewIndex[uint64, uint64](0, 1)] = "new"

		assert.Len(t, table, 2)
		assert.Equal(t, "old", table[NewIndex[uint64, uint64](0, 0)])
		assert.Equal(t, "new", table[NewIndex[uint64, uint64](0, 1)])
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Index(slot=4, gen=2)", NewIndex[uint64, uint64](4, 2).String())
	})
}
