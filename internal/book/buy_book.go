package book

import "depthbook/internal/common"

// NewBuyBook constructs the bid side of a symbol's book. Bids sort by
// descending price — the highest bid is the best price and is the first
// level an Ascend walk visits.
func NewBuyBook() *Book {
	return &Book{
		Side: common.Buy,
		Levels: newDualIndexedPriceMap(func(a, b *Level) bool {
			return a.Px > b.Px
		}),
	}
}
