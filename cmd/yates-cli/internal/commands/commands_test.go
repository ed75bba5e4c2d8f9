//go:build unit
// +build unit

package commands

import (
	"testing"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCartItems(t *testing.T) {
	items, err := parseCartItems([]string{"yates-water:3", "invisible-hat"})
	require.NoError(t, err)
	assert.Equal(t, []store.CartItem{{ProductID: "yates-water", Quantity: 3}, {ProductID: "invisible-hat", Quantity: 1}}, items)

	_, err = parseCartItems([]string{"yates-water:lots"})
	assert.Error(t, err)
}

func TestPricingFrom(t *testing.T) {
	pricing := pricingFrom(&config.StoreSettings{TaxRate: 0.0825, ShippingCents: 499, FreeShippingThresholdCents: 5000})

	quote, err := pricing.Price([]store.CartItem{{ProductID: "yates-water", Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(2_598), quote.SubtotalCents)
	assert.Equal(t, int64(214), quote.TaxCents)
	assert.Equal(t, int64(499), quote.ShippingCents)
	assert.Equal(t, "$33.11", formatCents(quote.TotalCents))
}

func TestSimulateGame_FirstMinute(t *testing.T) {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	state := game.NewState(start)

	require.NoError(t, simulateGame(state, start, 1, 5))

	// 300 clicks of a wooden pickaxe break 60 pebbles worth $2 each; the stone pickaxe costs $50
	assert.Equal(t, int64(300), state.TotalClicks)
	assert.Equal(t, int64(60), state.RocksBroken)
	assert.Equal(t, "stone", state.EquippedPickaxe)
	assert.Equal(t, "stone", state.CurrentRock)
	assert.InDelta(t, 70.0, state.Dollars, 1e-9)
	assert.Zero(t, state.Miners)
}

func TestSimulateGame_HiresMinersOverTime(t *testing.T) {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	state := game.NewState(start)

	require.NoError(t, simulateGame(state, start, 30, 5))

	assert.Positive(t, state.Miners)
	assert.Greater(t, state.Pickaxe().Power, 2.0)
}
