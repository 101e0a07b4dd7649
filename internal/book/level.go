package book

import "depthbook/internal/common"

// tombstone is written into a cleared slot's order id. Liveness is read
// from the slot's quantity, not its id: a live slot always holds a
// positive quantity and Tombstone zeroes it, so order id 0 stays usable.
const tombstone = 0

// Level is the aggregate state for one price on one side of one symbol:
// a count of live orders, their total quantity, and the append-only slot
// slice that gives each order a stable index for O(1) modify/cancel.
//
// Slots are never reused and never compacted while the level lives — a
// cancelled order's slot becomes a tombstone rather than being removed,
// so every other order's slot index stays valid.
type Level struct {
	Symbol common.SymbolID
	Side   common.Side
	Px     int64

	Num int64 // count of live (non-tombstone) slots
	Qty int64 // sum of qty over live slots

	orderIDs []int64 // slot index -> order id, or tombstone once cleared
	qtys     []int64 // slot index -> qty (0 once cleared), mirrors orderIDs index-for-index
}

// NewLevel creates an empty level identified by (symbol, side, px).
func NewLevel(symbol common.SymbolID, side common.Side, px int64) *Level {
	return &Level{Symbol: symbol, Side: side, Px: px}
}

// Append adds a new live slot for orderID/qty and returns its slot index.
func (l *Level) Append(orderID, qty int64) int {
	slot := len(l.orderIDs)
	l.orderIDs = append(l.orderIDs, orderID)
	l.qtys = append(l.qtys, qty)
	l.Num++
	l.Qty += qty
	return slot
}

// Tombstone clears the slot at the given index, removing removedQty from
// the level's aggregate quantity and decrementing its live count. The slot
// index itself is never reused.
func (l *Level) Tombstone(slot int, removedQty int64) {
	l.orderIDs[slot] = tombstone
	l.qtys[slot] = 0
	l.Num--
	l.Qty -= removedQty
}

// SetQty updates the quantity recorded at slot in place (used by a
// same-price modify, which does not change slot assignment or time
// priority).
func (l *Level) SetQty(slot int, qty int64) {
	l.qtys[slot] = qty
}

// Empty reports whether the level currently has no live orders.
func (l *Level) Empty() bool {
	return l.Num == 0
}

// OrderEntry is one (order id, quantity) pair as seen through a level's
// slot slice, skipping tombstones.
type OrderEntry struct {
	OrderID int64
	Qty     int64
}

// LiveOrders returns the level's live order entries in slot (arrival) order,
// i.e. time priority. Tombstoned slots are omitted.
func (l *Level) LiveOrders() []OrderEntry {
	entries := make([]OrderEntry, 0, l.Num)
	for i, id := range l.orderIDs {
		if l.qtys[i] == 0 {
			continue
		}
		entries = append(entries, OrderEntry{OrderID: id, Qty: l.qtys[i]})
	}
	return entries
}
