package book

import (
	"testing"

	"depthbook/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestDualIndexedPriceMapInsertLookupContains(t *testing.T) {
	m := newDualIndexedPriceMap(func(a, b *Level) bool { return a.Px < b.Px })

	lvl := NewLevel(4, common.Sell, 100)
	assert.True(t, m.Insert(lvl))
	assert.True(t, m.Contains(100))

	got, ok := m.Lookup(100)
	assert.True(t, ok)
	assert.Same(t, lvl, got)
}

func TestDualIndexedPriceMapRejectsDuplicateInsert(t *testing.T) {
	m := newDualIndexedPriceMap(func(a, b *Level) bool { return a.Px < b.Px })

	m.Insert(NewLevel(4, common.Sell, 100))
	assert.False(t, m.Insert(NewLevel(4, common.Sell, 100)))
}

func TestDualIndexedPriceMapMustLookupPanicsOnMiss(t *testing.T) {
	m := newDualIndexedPriceMap(func(a, b *Level) bool { return a.Px < b.Px })

	assert.Panics(t, func() {
		m.MustLookup(42)
	})
}

func TestDualIndexedPriceMapAscendOrderForBuyBook(t *testing.T) {
	buy := NewBuyBook()
	buy.Levels.Insert(NewLevel(4, common.Buy, 10))
	buy.Levels.Insert(NewLevel(4, common.Buy, 13))
	buy.Levels.Insert(NewLevel(4, common.Buy, 9))

	var seen []int64
	buy.Levels.Ascend(func(lvl *Level) bool {
		seen = append(seen, lvl.Px)
		return true
	})

	assert.Equal(t, []int64{13, 10, 9}, seen)
}

func TestDualIndexedPriceMapAscendOrderForSellBook(t *testing.T) {
	sell := NewSellBook()
	sell.Levels.Insert(NewLevel(4, common.Sell, 105))
	sell.Levels.Insert(NewLevel(4, common.Sell, 101))
	sell.Levels.Insert(NewLevel(4, common.Sell, 103))

	var seen []int64
	sell.Levels.Ascend(func(lvl *Level) bool {
		seen = append(seen, lvl.Px)
		return true
	})

	assert.Equal(t, []int64{101, 103, 105}, seen)
}

func TestDualIndexedPriceMapEraseRemovesFromBothIndexes(t *testing.T) {
	m := newDualIndexedPriceMap(func(a, b *Level) bool { return a.Px < b.Px })
	m.Insert(NewLevel(4, common.Sell, 100))

	assert.True(t, m.Erase(100))
	assert.False(t, m.Contains(100))
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Erase(100))
}

func TestBookLookupOrCreatePersistsEmptyLevels(t *testing.T) {
	buy := NewBuyBook()
	lvl := buy.LookupOrCreate(4, 10)
	slot := lvl.Append(1, 3)
	lvl.Tombstone(slot, 3)

	again := buy.LookupOrCreate(4, 10)
	assert.Same(t, lvl, again)
	assert.True(t, again.Empty())
	assert.True(t, buy.Levels.Contains(10))
}
