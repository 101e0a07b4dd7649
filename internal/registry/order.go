// Package registry owns the two process-wide (per-Engine) lookup tables
// described by the spec: the global order index keyed by order id, and the
// symbol id/name bijection. Neither table knows about books or levels —
// those links live inside the records themselves.
package registry

import "depthbook/internal/common"

// OrderRecord is the registry's owned representation of a single resting
// order. Its Slot and (Symbol, Side, Px) fields are exactly enough to
// locate the order's Level in O(1) through the owning SymbolHandler's
// books, per the cross-referenced graph design in SPEC_FULL.md §9 — no
// raw pointer to the Level itself is stored here, so OrderRecord stays a
// plain value.
type OrderRecord struct {
	ID     int64
	Symbol common.SymbolID
	Side   common.Side
	Px     int64
	Qty    int64
	Slot   int
}
