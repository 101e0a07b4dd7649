package book

import "depthbook/internal/common"

// Book is the resting-order state for one side of one symbol: a
// DualIndexedPriceMap of levels, ordered by the side's price-priority
// comparator.
type Book struct {
	Side   common.Side
	Levels *DualIndexedPriceMap
}

// LookupOrCreate returns the level at px, creating an empty one owned by
// symbol/side if it does not yet exist. A level persists for the process
// lifetime of its symbol once created, even after it empties out.
func (b *Book) LookupOrCreate(symbol common.SymbolID, px int64) *Level {
	if lvl, ok := b.Levels.Lookup(px); ok {
		return lvl
	}
	lvl := NewLevel(symbol, b.Side, px)
	b.Levels.Insert(lvl)
	return lvl
}
