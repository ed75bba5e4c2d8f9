//go:build unit
// +build unit

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPricing = Pricing{TaxRate: 0.0825, ShippingCents: 499, FreeShippingThresholdCents: 5_000}

func TestPricing_Price(t *testing.T) {
	q, err := testPricing.Price([]CartItem{{ProductID: "yates-water", Quantity: 2}})
	require.NoError(t, err)

	assert.Len(t, q.Lines, 1)
	assert.Equal(t, int64(2_598), q.SubtotalCents)
	// 2598 * 0.0825 = 214.335
	assert.Equal(t, int64(214), q.TaxCents)
	assert.Equal(t, int64(499), q.ShippingCents)
	assert.Equal(t, int64(2_598+214+499), q.TotalCents)
}

func TestPricing_FreeShipping(t *testing.T) {
	q, err := testPricing.Price([]CartItem{{ProductID: "rock", Quantity: 1}})
	require.NoError(t, err)

	assert.Equal(t, int64(19_999), q.SubtotalCents)
	assert.Equal(t, int64(0), q.ShippingCents)
	// 19999 * 0.0825 = 1649.9175
	assert.Equal(t, int64(1_650), q.TaxCents)
}

func TestPricing_MergesDuplicateLines(t *testing.T) {
	q, err := testPricing.Price([]CartItem{
		{ProductID: "premium-air", Quantity: 1},
		{ProductID: "yates-water", Quantity: 1},
		{ProductID: "premium-air", Quantity: 2},
	})
	require.NoError(t, err)

	require.Len(t, q.Lines, 2)
	assert.Equal(t, "premium-air", q.Lines[0].ProductID)
	assert.Equal(t, 3, q.Lines[0].Quantity)
	assert.Equal(t, int64(3*899), q.Lines[0].TotalCents)
}

func TestPricing_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
	}{
		{"empty", nil},
		{"unknown product", []CartItem{{ProductID: "nft", Quantity: 1}}},
		{"zero quantity", []CartItem{{ProductID: "rock", Quantity: 0}}},
		{"too many", []CartItem{{ProductID: "rock", Quantity: 100}}},
		{"merged too many", []CartItem{{ProductID: "rock", Quantity: 60}, {ProductID: "rock", Quantity: 60}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testPricing.Price(tt.items)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCart)
		})
	}
}

func TestProducts_SortedByPrice(t *testing.T) {
	products := Products()
	require.NotEmpty(t, products)
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].PriceCents, products[i].PriceCents)
	}
}
