// Package store defines the product catalog, cart pricing and purchases.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// Purchase statuses. A purchase is created before the gateway is called and moves to
// one of the others once the charge outcome is known.
const (
	StatusCreated  = "created"
	StatusPaid     = "paid"
	StatusPending  = "pending"
	StatusDeclined = "declined"
	StatusFailed   = "failed"
)

var (
	// ErrInvalidCart is returned for empty carts, unknown products and bad quantities.
	ErrInvalidCart = errors.New("invalid cart")

	// ErrNotFound is returned when a purchase does not exist.
	ErrNotFound = errors.New("purchase not found")

	// ErrPaymentDeclined is returned when the gateway refuses the charge.
	ErrPaymentDeclined = errors.New("payment declined")
)

// Purchase is a checkout and the state of its charge
type Purchase struct {
	ID            string     `validate:"required,uuid4"`
	ClientID      string     `validate:"required,uuid4"`
	Lines         []LineItem `validate:"required,min=1"`
	SubtotalCents int64      `validate:"min=0"`
	TaxCents      int64      `validate:"min=0"`
	ShippingCents int64      `validate:"min=0"`
	TotalCents    int64      `validate:"gt=0"`
	Currency      string     `validate:"required,len=3"`
	ChargeID      string     `validate:"omitempty,max=100"`
	Status        string     `validate:"required,oneof=created paid pending declined failed"`
	CreatedAt     time.Time  `validate:"required"`
}

// Validate for validating Purchase struct
func (p *Purchase) Validate() error {
	if err := validators.Struct(p); err != nil {
		return err
	}
	return ValidateCharge(p.ChargeID, p.Status)
}

// ValidateCharge checks that a status which implies a gateway charge carries its id
func ValidateCharge(chargeID, status string) error {
	switch status {
	case StatusCreated, StatusFailed:
		return nil
	case StatusPaid, StatusPending, StatusDeclined:
		if chargeID == "" {
			return fmt.Errorf("%w: %s purchase without a charge id", validators.ErrValidation, status)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown purchase status %q", validators.ErrValidation, status)
	}
}

// Charge is the outcome of a payment gateway call
type Charge struct {
	ID             string
	Status         string
	FailureCode    string
	FailureMessage string
}

// ChargeRequest asks a gateway to collect an amount
type ChargeRequest struct {
	PurchaseID  string
	AmountCents int64
	Currency    string
	CardToken   string
	Description string
}

// PaymentGateway collects money for a purchase
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Charge, error)
}

// CheckoutService defines quoting and checkout
type CheckoutService interface {
	Quote(ctx context.Context, items []CartItem) (*Quote, error)
	Checkout(ctx context.Context, clientID string, items []CartItem, cardToken string) (*Purchase, error)
	ListPurchases(ctx context.Context, clientID string) ([]*Purchase, error)
	GetPurchase(ctx context.Context, clientID, purchaseID string) (*Purchase, error)
}

// Repository defines persistence of purchases
type Repository interface {
	Create(ctx context.Context, purchase *Purchase) error
	UpdateCharge(ctx context.Context, purchaseID, chargeID, status string) error
	GetByID(ctx context.Context, purchaseID string) (*Purchase, error)
	ListByClient(ctx context.Context, clientID string) ([]*Purchase, error)
}
