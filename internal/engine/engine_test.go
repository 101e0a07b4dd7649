package engine

import (
	"testing"

	"depthbook/internal/common"
	"depthbook/internal/symbol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSymbolBijectionAndDuplicateRejection(t *testing.T) {
	e := New()

	require.True(t, e.AddSymbol(4, "DOGE_USDT"))
	assert.False(t, e.AddSymbol(4, "DOGE_USD"))
	assert.Equal(t, 1, e.SymbolCount())

	id, ok := e.SymbolIDOf("DOGE_USDT")
	require.True(t, ok)
	assert.Equal(t, common.SymbolID(4), id)

	name, ok := e.SymbolNameOf(4)
	require.True(t, ok)
	assert.Equal(t, "DOGE_USDT", name)
}

func TestAddOrderUnknownSymbolRejected(t *testing.T) {
	e := New()
	assert.False(t, e.AddOrder(1, 100, 10, 5, common.Buy))
}

func TestEngineTwoInstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	require.True(t, a.AddSymbol(1, "SYM"))
	require.True(t, a.AddOrder(1, 100, 10, 5, common.Buy))

	assert.Equal(t, 0, b.SymbolCount()) // sanity: b starts from scratch
	assert.True(t, b.AddSymbol(1, "SYM"))
	assert.False(t, b.RemoveOrder(100))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestEngineEndToEndScenario(t *testing.T) {
	e := New()
	require.True(t, e.AddSymbol(4, "DOGE_USDT"))

	require.True(t, e.AddOrder(4, 0, 10, 3, common.Buy))
	require.True(t, e.AddOrder(4, 1, 10, 2, common.Buy))
	require.True(t, e.AddOrder(4, 2, 13, 3, common.Buy))
	require.True(t, e.ModifyOrder(2, 9, 10))
	require.True(t, e.AddOrder(4, 3, 11, 1, common.Buy))
	require.True(t, e.ModifyOrder(0, 10, 5))
	require.True(t, e.AddOrder(4, 4, 3, 10, common.Buy))
	require.True(t, e.RemoveOrder(3))
	require.True(t, e.AddOrder(4, 6, 10, 3, common.Sell))
	require.True(t, e.AddOrder(4, 7, 10, 3, common.Buy))
	require.True(t, e.RemoveOrder(7))
	require.True(t, e.AddOrder(4, 5, 2, 4, common.Buy))

	views, actual := e.QueryTopFull(4, 7, common.Buy)
	require.Equal(t, 4, actual)
	expected := []struct {
		px, qty int64
	}{{10, 7}, {9, 10}, {3, 10}, {2, 4}}
	for i, want := range expected {
		assert.Equal(t, want.px, views[i].Px)
		assert.Equal(t, want.qty, views[i].Qty)
	}

	top, actual := e.QueryTop(4, 7, common.Buy)
	require.Equal(t, 4, actual)
	assert.Equal(t, []symbol.LevelSummary{{Px: 10, Qty: 7}, {Px: 9, Qty: 10}, {Px: 3, Qty: 10}, {Px: 2, Qty: 4}}, top)
}

func TestRemoveOrderUnknownIDRejected(t *testing.T) {
	e := New()
	assert.False(t, e.RemoveOrder(123))
}

func TestModifyOrderUnknownIDRejected(t *testing.T) {
	e := New()
	assert.False(t, e.ModifyOrder(123, 10, 5))
}

func TestQueryUnknownSymbolReturnsEmpty(t *testing.T) {
	e := New()
	views, actual := e.QueryTopFull(99, 5, common.Buy)
	assert.Equal(t, 0, actual)
	assert.Nil(t, views)
}
