package symbol

import "depthbook/internal/common"

// LevelSummary is the compact query_top result: a price and its aggregate
// quantity, with no per-order detail.
type LevelSummary struct {
	Px  int64
	Qty int64
}

// OrderView is one resident order as seen through a query_top_full result.
type OrderView struct {
	OrderID int64
	Qty     int64
}

// LevelView is the rich query_top_full result for one non-empty level.
type LevelView struct {
	Symbol common.SymbolID
	Side   common.Side
	Px     int64
	Qty    int64
	Count  int64
	Orders []OrderView
}
