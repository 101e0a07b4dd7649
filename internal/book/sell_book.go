package book

import "depthbook/internal/common"

// NewSellBook constructs the ask side of a symbol's book. Asks sort by
// ascending price — the lowest ask is the best price and is the first
// level an Ascend walk visits.
func NewSellBook() *Book {
	return &Book{
		Side: common.Sell,
		Levels: newDualIndexedPriceMap(func(a, b *Level) bool {
			return a.Px < b.Px
		}),
	}
}
