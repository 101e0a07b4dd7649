package book

import (
	"fmt"

	"github.com/tidwall/btree"
)

// InvariantViolation signals a bug inside the engine, not a caller mistake:
// e.g. asking the price map for a level the engine itself never created.
// Per the error taxonomy, this is fatal and is never returned to a caller
// as a recoverable error.
type InvariantViolation struct {
	Op string
	Px int64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("book: invariant violation during %s: price %d has no level", e.Op, e.Px)
}

// DualIndexedPriceMap maps price -> *Level with two coupled indexes: a
// btree ordered by the side's comparator (for best-to-worst traversal) and
// a plain Go map (for O(1) contains/lookup). Both indexes always hold the
// same *Level pointer for a given price, and a Level is mutated in place —
// so lookup/contains never touch the tree, only the hash map.
type DualIndexedPriceMap struct {
	ordered *btree.BTreeG[*Level]
	byPrice map[int64]*Level
}

func newDualIndexedPriceMap(less func(a, b *Level) bool) *DualIndexedPriceMap {
	return &DualIndexedPriceMap{
		ordered: btree.NewBTreeG(less),
		byPrice: make(map[int64]*Level),
	}
}

// Contains reports whether a level exists at px. O(1).
func (m *DualIndexedPriceMap) Contains(px int64) bool {
	_, ok := m.byPrice[px]
	return ok
}

// Lookup returns the level at px, if any. O(1).
func (m *DualIndexedPriceMap) Lookup(px int64) (*Level, bool) {
	lvl, ok := m.byPrice[px]
	return lvl, ok
}

// MustLookup returns the level at px. It panics with an *InvariantViolation
// if no such level exists — the engine never asks for a level it did not
// itself create, so a miss here means internal state has been corrupted.
func (m *DualIndexedPriceMap) MustLookup(px int64) *Level {
	lvl, ok := m.byPrice[px]
	if !ok {
		panic(&InvariantViolation{Op: "lookup", Px: px})
	}
	return lvl
}

// Insert adds lvl at lvl.Px. It is a no-op returning false if a level
// already exists at that price (amortized O(log n) for the tree insert).
func (m *DualIndexedPriceMap) Insert(lvl *Level) bool {
	if _, exists := m.byPrice[lvl.Px]; exists {
		return false
	}
	m.byPrice[lvl.Px] = lvl
	m.ordered.Set(lvl)
	return true
}

// Erase removes the level at px from both indexes. Not used by the core at
// steady state (levels persist once created), but kept for completeness
// and symmetry with Insert. O(log n).
func (m *DualIndexedPriceMap) Erase(px int64) bool {
	lvl, ok := m.byPrice[px]
	if !ok {
		return false
	}
	delete(m.byPrice, px)
	m.ordered.Delete(lvl)
	return true
}

// Ascend walks the map from the best price (per the side's comparator)
// towards the worst, calling fn for each level. Iteration stops early if
// fn returns false.
func (m *DualIndexedPriceMap) Ascend(fn func(lvl *Level) bool) {
	m.ordered.Scan(fn)
}

// Len returns the number of levels currently tracked (including empty,
// tombstoned-only levels that have not been erased).
func (m *DualIndexedPriceMap) Len() int {
	return len(m.byPrice)
}
