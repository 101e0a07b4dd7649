package registry

import "depthbook/internal/common"

// SymbolRegistry is the bijection symbol_id <-> symbol_name for one Engine.
// A symbol is created once via Add and never removed.
type SymbolRegistry struct {
	idToName map[common.SymbolID]string
	nameToID map[string]common.SymbolID
}

// NewSymbolRegistry returns an empty registry.
func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{
		idToName: make(map[common.SymbolID]string),
		nameToID: make(map[string]common.SymbolID),
	}
}

// Add registers id <-> name. It fails (returns false) if id is already
// registered. A name colliding with a different id is not guarded against
// here; callers are expected to pick unique names, same as the source this
// was distilled from only guards on id.
func (r *SymbolRegistry) Add(id common.SymbolID, name string) bool {
	if _, exists := r.idToName[id]; exists {
		return false
	}
	r.idToName[id] = name
	r.nameToID[name] = id
	return true
}

// IDOf returns the id registered for name.
func (r *SymbolRegistry) IDOf(name string) (common.SymbolID, bool) {
	id, ok := r.nameToID[name]
	return id, ok
}

// NameOf returns the name registered for id.
func (r *SymbolRegistry) NameOf(id common.SymbolID) (string, bool) {
	name, ok := r.idToName[id]
	return name, ok
}

// Count returns the number of registered symbols.
func (r *SymbolRegistry) Count() int {
	return len(r.idToName)
}
