package store

import (
	"fmt"
	"math"
)

// Quantity bounds per cart line
const (
	MinQuantity = 1
	MaxQuantity = 99
	MaxLines    = 50
)

// CartItem is a requested product and quantity
type CartItem struct {
	ProductID string
	Quantity  int
}

// LineItem is a priced cart line
type LineItem struct {
	ProductID      string
	Name           string
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
}

// Quote is the priced cart
type Quote struct {
	Lines         []LineItem
	SubtotalCents int64
	TaxCents      int64
	ShippingCents int64
	TotalCents    int64
}

// Pricing holds the parameters of a quote
type Pricing struct {
	TaxRate                    float64
	ShippingCents              int64
	FreeShippingThresholdCents int64
}

// Price computes the quote for items. Duplicate product lines are merged.
// Tax is the subtotal times the rate rounded half up; shipping is waived when the
// subtotal reaches the free shipping threshold (a zero threshold never waives it).
func (p Pricing) Price(items []CartItem) (*Quote, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidCart)
	}
	if len(items) > MaxLines {
		return nil, fmt.Errorf("%w: at most %d lines", ErrInvalidCart, MaxLines)
	}

	merged := make(map[string]int)
	var order []string
	for _, item := range items {
		if _, ok := LookupProduct(item.ProductID); !ok {
			return nil, fmt.Errorf("%w: unknown product %q", ErrInvalidCart, item.ProductID)
		}
		if item.Quantity < MinQuantity || item.Quantity > MaxQuantity {
			return nil, fmt.Errorf("%w: quantity %d for %q outside %d-%d", ErrInvalidCart, item.Quantity, item.ProductID, MinQuantity, MaxQuantity)
		}
		if _, seen := merged[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		merged[item.ProductID] += item.Quantity
	}

	q := &Quote{}
	for _, id := range order {
		product, _ := LookupProduct(id)
		qty := merged[id]
		if qty > MaxQuantity {
			return nil, fmt.Errorf("%w: quantity %d for %q exceeds %d", ErrInvalidCart, qty, id, MaxQuantity)
		}
		line := LineItem{
			ProductID:      id,
			Name:           product.Name,
			Quantity:       qty,
			UnitPriceCents: product.PriceCents,
			TotalCents:     product.PriceCents * int64(qty),
		}
		q.Lines = append(q.Lines, line)
		q.SubtotalCents += line.TotalCents
	}

	q.TaxCents = int64(math.Floor(float64(q.SubtotalCents)*p.TaxRate + 0.5))
	q.ShippingCents = p.ShippingCents
	if p.FreeShippingThresholdCents > 0 && q.SubtotalCents >= p.FreeShippingThresholdCents {
		q.ShippingCents = 0
	}
	q.TotalCents = q.SubtotalCents + q.TaxCents + q.ShippingCents

	return q, nil
}
