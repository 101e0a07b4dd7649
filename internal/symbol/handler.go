// Package symbol implements the coordination heart of the engine: given a
// single symbol's two books and the shared order registry, it carries out
// add/remove/modify/query while keeping the global order index and the
// per-side level structures consistent with each other.
package symbol

import (
	"depthbook/internal/book"
	"depthbook/internal/common"
	"depthbook/internal/registry"

	"github.com/rs/zerolog"
)

// Handler owns the two Books (bid and ask) for one symbol and coordinates
// every add/remove/modify/query against them with the shared OrderRegistry.
type Handler struct {
	symbol common.SymbolID
	orders *registry.OrderRegistry
	books  [2]*book.Book // indexed by common.Side
	log    zerolog.Logger
}

// New builds a handler for symbol, backed by the given shared order
// registry. log should already carry identifying fields for the owning
// engine (e.g. engine_id); New adds symbol_id on top of it.
func New(sym common.SymbolID, orders *registry.OrderRegistry, log zerolog.Logger) *Handler {
	return &Handler{
		symbol: sym,
		orders: orders,
		books:  [2]*book.Book{common.Buy: book.NewBuyBook(), common.Sell: book.NewSellBook()},
		log:    log.With().Int64("symbol_id", int64(sym)).Logger(),
	}
}

// AddOrder creates a new resting order (id, px, qty, side) and appends it
// to the appropriate level. Rejects a duplicate id or a non-positive qty
// without changing any state.
func (h *Handler) AddOrder(orderID, px, qty int64, side common.Side) bool {
	if qty <= 0 {
		return false
	}
	if h.orders.Contains(orderID) {
		h.log.Debug().Int64("order_id", orderID).Msg("add_order rejected: duplicate order id")
		return false
	}

	rec := &registry.OrderRecord{ID: orderID, Symbol: h.symbol, Side: side, Px: px, Qty: qty}
	h.orders.Insert(rec)
	h.appendToLevel(rec)
	return true
}

// AddRecord is the pre-built-record form of AddOrder. It additionally
// rejects a record whose Symbol does not match this handler's symbol.
func (h *Handler) AddRecord(rec registry.OrderRecord) bool {
	if rec.Symbol != h.symbol {
		return false
	}
	if rec.Qty <= 0 {
		return false
	}
	if h.orders.Contains(rec.ID) {
		h.log.Debug().Int64("order_id", rec.ID).Msg("add_order rejected: duplicate order id")
		return false
	}

	owned := rec
	h.orders.Insert(&owned)
	h.appendToLevel(&owned)
	return true
}

func (h *Handler) appendToLevel(rec *registry.OrderRecord) {
	lvl := h.books[rec.Side].LookupOrCreate(h.symbol, rec.Px)
	rec.Slot = lvl.Append(rec.ID, rec.Qty)
}

// RemoveOrder cancels a resting order. Rejects an unknown id, or one that
// belongs to a different symbol than this handler's (no cross-symbol
// cancel).
func (h *Handler) RemoveOrder(orderID int64) bool {
	if !h.orders.Contains(orderID) {
		h.log.Debug().Int64("order_id", orderID).Msg("remove_order rejected: unknown order id")
		return false
	}

	rec := h.orders.Get(orderID)
	if rec.Symbol != h.symbol {
		h.log.Debug().Int64("order_id", orderID).Msg("remove_order rejected: symbol mismatch")
		return false
	}

	lvl := h.books[rec.Side].Levels.MustLookup(rec.Px)
	lvl.Tombstone(rec.Slot, rec.Qty)
	h.orders.Erase(orderID)
	return true
}

// ModifyOrder amends an order's price and/or quantity. A same-price modify
// is in place and preserves time priority (the slot index is unchanged); a
// price-changing modify re-appends at the new level, losing time priority.
func (h *Handler) ModifyOrder(orderID, newPx, newQty int64) bool {
	if newQty <= 0 {
		return false
	}
	if !h.orders.Contains(orderID) {
		h.log.Debug().Int64("order_id", orderID).Msg("modify_order rejected: unknown order id")
		return false
	}

	rec := h.orders.Get(orderID)
	if rec.Symbol != h.symbol {
		h.log.Debug().Int64("order_id", orderID).Msg("modify_order rejected: symbol mismatch")
		return false
	}

	if newPx == rec.Px {
		lvl := h.books[rec.Side].Levels.MustLookup(rec.Px)
		lvl.Qty += newQty - rec.Qty
		lvl.SetQty(rec.Slot, newQty)
		rec.Qty = newQty
		return true
	}

	side := rec.Side
	h.RemoveOrder(orderID)
	return h.AddOrder(orderID, newPx, newQty, side)
}

// QueryTop returns up to depth non-empty levels on side, best price first,
// as compact (px, qty) pairs.
func (h *Handler) QueryTop(depth int, side common.Side) ([]LevelSummary, int) {
	if depth <= 0 {
		return nil, 0
	}

	result := make([]LevelSummary, 0, depth)
	h.books[side].Levels.Ascend(func(lvl *book.Level) bool {
		if lvl.Empty() {
			return true
		}
		result = append(result, LevelSummary{Px: lvl.Px, Qty: lvl.Qty})
		return len(result) < depth
	})
	return result, len(result)
}

// QueryTopFull returns up to depth non-empty levels on side, best price
// first, as rich LevelViews carrying per-order detail.
func (h *Handler) QueryTopFull(depth int, side common.Side) ([]LevelView, int) {
	if depth <= 0 {
		return nil, 0
	}

	result := make([]LevelView, 0, depth)
	h.books[side].Levels.Ascend(func(lvl *book.Level) bool {
		if lvl.Empty() {
			return true
		}
		entries := lvl.LiveOrders()
		orders := make([]OrderView, len(entries))
		for i, e := range entries {
			orders[i] = OrderView{OrderID: e.OrderID, Qty: e.Qty}
		}
		result = append(result, LevelView{
			Symbol: lvl.Symbol,
			Side:   lvl.Side,
			Px:     lvl.Px,
			Qty:    lvl.Qty,
			Count:  lvl.Num,
			Orders: orders,
		})
		return len(result) < depth
	})
	return result, len(result)
}
