// Package engine is the façade (SPEC_FULL.md §4.F) that a surrounding
// process talks to: it owns the symbol registry, the shared order
// registry, and one SymbolHandler per registered symbol, and routes every
// command/query to the right one.
//
// Registries used to be process-wide C++ statics in the source this was
// distilled from. Here they are plain fields on an explicit Engine value,
// so a process can run as many independent engines as it likes (one per
// test case, one per symbol shard, etc.) with no shared global state.
package engine

import (
	"depthbook/internal/common"
	"depthbook/internal/registry"
	"depthbook/internal/symbol"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Engine is a single, independent instance of the book: its own symbol
// registry, order registry, and set of per-symbol handlers.
type Engine struct {
	id       string
	symbols  *registry.SymbolRegistry
	orders   *registry.OrderRegistry
	handlers map[common.SymbolID]*symbol.Handler
	log      zerolog.Logger
}

// New returns an empty Engine with no registered symbols. Logs are emitted
// against the global zerolog logger (github.com/rs/zerolog/log), tagged
// with a generated engine_id so multiple Engines in one process (or one
// test binary) remain distinguishable in structured logs — see
// SPEC_FULL.md §3.
func New() *Engine {
	id := uuid.New().String()
	return &Engine{
		id:       id,
		symbols:  registry.NewSymbolRegistry(),
		orders:   registry.NewOrderRegistry(),
		handlers: make(map[common.SymbolID]*symbol.Handler),
		log:      log.With().Str("engine_id", id).Logger(),
	}
}

// ID returns the engine's generated instance id.
func (e *Engine) ID() string {
	return e.id
}

// AddSymbol registers a new symbol id/name pair and creates its
// SymbolHandler. Fails (returns false) if id is already registered.
func (e *Engine) AddSymbol(id common.SymbolID, name string) bool {
	if !e.symbols.Add(id, name) {
		e.log.Debug().Int64("symbol_id", int64(id)).Str("name", name).Msg("add_symbol rejected: duplicate symbol id")
		return false
	}
	e.handlers[id] = symbol.New(id, e.orders, e.log)
	e.log.Info().Int64("symbol_id", int64(id)).Str("name", name).Msg("symbol registered")
	return true
}

// SymbolIDOf returns the id registered for name.
func (e *Engine) SymbolIDOf(name string) (common.SymbolID, bool) {
	return e.symbols.IDOf(name)
}

// SymbolNameOf returns the name registered for id.
func (e *Engine) SymbolNameOf(id common.SymbolID) (string, bool) {
	return e.symbols.NameOf(id)
}

// SymbolCount returns the number of registered symbols.
func (e *Engine) SymbolCount() int {
	return e.symbols.Count()
}

// handler returns the SymbolHandler for id, or nil if id is unregistered.
func (e *Engine) handler(id common.SymbolID) *symbol.Handler {
	return e.handlers[id]
}

// AddOrder places a new resting limit order on symbolID's book. Returns
// false if symbolID is unregistered, orderID already exists, or qty <= 0.
func (e *Engine) AddOrder(symbolID common.SymbolID, orderID, px, qty int64, side common.Side) bool {
	h := e.handler(symbolID)
	if h == nil {
		e.log.Debug().Int64("symbol_id", int64(symbolID)).Msg("add_order rejected: unknown symbol")
		return false
	}
	return h.AddOrder(orderID, px, qty, side)
}

// RemoveOrder cancels orderID wherever it rests. Unlike AddOrder/
// ModifyOrder, this does not take a symbol id: the order registry is
// global, so the order's own symbol is used to find its handler. Returns
// false if orderID is unknown.
func (e *Engine) RemoveOrder(orderID int64) bool {
	if !e.orders.Contains(orderID) {
		return false
	}
	rec := e.orders.Get(orderID)
	h := e.handler(rec.Symbol)
	if h == nil {
		return false
	}
	return h.RemoveOrder(orderID)
}

// ModifyOrder amends orderID's price and/or quantity in place (same-price)
// or by re-appending at a new level (price change). Returns false if
// orderID is unknown or newQty <= 0.
func (e *Engine) ModifyOrder(orderID, px, qty int64) bool {
	if !e.orders.Contains(orderID) {
		return false
	}
	rec := e.orders.Get(orderID)
	h := e.handler(rec.Symbol)
	if h == nil {
		return false
	}
	return h.ModifyOrder(orderID, px, qty)
}

// QueryTop returns up to depth non-empty levels of symbolID's side, best
// price first, as compact (px, qty) pairs.
func (e *Engine) QueryTop(symbolID common.SymbolID, depth int, side common.Side) ([]symbol.LevelSummary, int) {
	h := e.handler(symbolID)
	if h == nil {
		return nil, 0
	}
	return h.QueryTop(depth, side)
}

// QueryTopFull returns up to depth non-empty levels of symbolID's side,
// best price first, as rich LevelViews.
func (e *Engine) QueryTopFull(symbolID common.SymbolID, depth int, side common.Side) ([]symbol.LevelView, int) {
	h := e.handler(symbolID)
	if h == nil {
		return nil, 0
	}
	return h.QueryTopFull(depth, side)
}
