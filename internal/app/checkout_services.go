package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/tracing"
)

// checkoutService implements the CheckoutService interface
type checkoutService struct {
	pricing   store.Pricing
	currency  string
	repo      store.Repository
	gateway   store.PaymentGateway
	publisher events.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(settings *config.StoreSettings, currency string, repo store.Repository, gateway store.PaymentGateway, publisher events.Publisher, logger logger.Logger) (store.CheckoutService, error) {
	if settings == nil {
		return nil, fmt.Errorf("store settings are required")
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("invalid currency %q", currency)
	}

	return &checkoutService{
		pricing: store.Pricing{
			TaxRate:                    settings.TaxRate,
			ShippingCents:              settings.ShippingCents,
			FreeShippingThresholdCents: settings.FreeShippingThresholdCents,
		},
		currency:  strings.ToLower(currency),
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger.Named("checkout"),
		now:       clock,
	}, nil
}

func (s *checkoutService) Quote(_ context.Context, items []store.CartItem) (*store.Quote, error) {
	return s.pricing.Price(items)
}

// Checkout prices the cart, records the purchase, charges the gateway and stores the
// charge outcome on the purchase. A declined charge is reported as ErrPaymentDeclined.
func (s *checkoutService) Checkout(ctx context.Context, clientID string, items []store.CartItem, cardToken string) (purchase *store.Purchase, err error) {
	ctx, span := tracing.Start(ctx, "store.Checkout")
	defer func() { tracing.End(span, err) }()

	quote, err := s.pricing.Price(items)
	if err != nil {
		return nil, err
	}

	purchase = &store.Purchase{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		Lines:         quote.Lines,
		SubtotalCents: quote.SubtotalCents,
		TaxCents:      quote.TaxCents,
		ShippingCents: quote.ShippingCents,
		TotalCents:    quote.TotalCents,
		Currency:      s.currency,
		Status:        store.StatusCreated,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	charge, err := s.gateway.Charge(ctx, store.ChargeRequest{
		PurchaseID:  purchase.ID,
		AmountCents: quote.TotalCents,
		Currency:    s.currency,
		CardToken:   cardToken,
		Description: fmt.Sprintf("Yates Inc. order %s", purchase.ID),
	})
	if err != nil {
		if updateErr := s.repo.UpdateCharge(ctx, purchase.ID, "", store.StatusFailed); updateErr != nil {
			s.logger.Warn("Failed to mark purchase ", purchase.ID, " as failed: ", updateErr)
		}
		return nil, fmt.Errorf("failed to charge purchase %s: %w", purchase.ID, err)
	}

	if err := s.repo.UpdateCharge(ctx, purchase.ID, charge.ID, charge.Status); err != nil {
		s.logger.Error("Charge ", charge.ID, " (", charge.Status, ", ", purchase.TotalCents, " ", s.currency,
			") for purchase ", purchase.ID, " of client ", clientID, " was not recorded: ", err)
		return nil, fmt.Errorf("failed to record charge %s for purchase %s: %w", charge.ID, purchase.ID, err)
	}
	purchase.ChargeID = charge.ID
	purchase.Status = charge.Status

	if charge.Status == store.StatusDeclined {
		s.logger.Warn("Charge ", charge.ID, " declined: ", charge.FailureCode, " ", charge.FailureMessage)
		return purchase, fmt.Errorf("%w: %s", store.ErrPaymentDeclined, charge.FailureMessage)
	}

	payload := events.PurchaseCompletedPayload{
		PurchaseID: purchase.ID,
		ClientID:   clientID,
		TotalCents: purchase.TotalCents,
		Currency:   purchase.Currency,
	}
	if err := s.publisher.Publish(ctx, events.PurchaseCompleted, payload); err != nil {
		s.logger.Warn("Failed to publish ", events.PurchaseCompleted, ": ", err)
	}

	s.logger.Info("Purchase ", purchase.ID, " ", purchase.Status, " for client ", clientID)
	return purchase, nil
}

func (s *checkoutService) ListPurchases(ctx context.Context, clientID string) ([]*store.Purchase, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// GetPurchase returns a purchase of the client. Purchases of other clients are not found.
func (s *checkoutService) GetPurchase(ctx context.Context, clientID, purchaseID string) (*store.Purchase, error) {
	purchase, err := s.repo.GetByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase.ClientID != clientID {
		return nil, fmt.Errorf("purchase with id %s: %w", purchaseID, store.ErrNotFound)
	}
	return purchase, nil
}
