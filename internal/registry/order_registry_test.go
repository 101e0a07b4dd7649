package registry

import (
	"testing"

	"depthbook/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestOrderRegistryInsertContainsGet(t *testing.T) {
	r := NewOrderRegistry()
	rec := &OrderRecord{ID: 1, Symbol: 4, Side: common.Buy, Px: 10, Qty: 3}

	assert.True(t, r.Insert(rec))
	assert.True(t, r.Contains(1))
	assert.Same(t, rec, r.Get(1))
	assert.Equal(t, 1, r.Len())
}

func TestOrderRegistryRejectsDuplicateID(t *testing.T) {
	r := NewOrderRegistry()
	r.Insert(&OrderRecord{ID: 1, Symbol: 4, Side: common.Buy, Px: 10, Qty: 3})

	assert.False(t, r.Insert(&OrderRecord{ID: 1, Symbol: 4, Side: common.Buy, Px: 99, Qty: 1}))
	assert.Equal(t, int64(10), r.Get(1).Px)
}

func TestOrderRegistryEraseAllowsIDReuse(t *testing.T) {
	r := NewOrderRegistry()
	r.Insert(&OrderRecord{ID: 1, Symbol: 4, Side: common.Buy, Px: 10, Qty: 3})

	assert.True(t, r.Erase(1))
	assert.False(t, r.Contains(1))
	assert.False(t, r.Erase(1))

	assert.True(t, r.Insert(&OrderRecord{ID: 1, Symbol: 4, Side: common.Sell, Px: 11, Qty: 5}))
	assert.Equal(t, common.Sell, r.Get(1).Side)
}

func TestOrderRegistryGetPanicsOnMissingID(t *testing.T) {
	r := NewOrderRegistry()
	assert.Panics(t, func() {
		r.Get(999)
	})
}
