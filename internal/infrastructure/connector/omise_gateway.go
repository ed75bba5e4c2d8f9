package connector

import (
	"context"
	"fmt"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// omiseGateway charges card tokens through the Omise API
type omiseGateway struct {
	client *omise.Client
	logger logger.Logger
}

// NewOmiseGateway creates a PaymentGateway backed by Omise
func NewOmiseGateway(settings *config.PaymentSettings, logger logger.Logger) (store.PaymentGateway, error) {
	client, err := omise.NewClient(settings.PublicKey, settings.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create omise client: %w", err)
	}
	client.SetDebug(false)

	return &omiseGateway{
		client: client,
		logger: logger,
	}, nil
}

func (g *omiseGateway) Charge(ctx context.Context, req store.ChargeRequest) (*store.Charge, error) {
	if req.AmountCents <= 0 || req.CardToken == "" || req.Currency == "" {
		return nil, fmt.Errorf("%w: invalid charge parameters", validators.ErrValidation)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := &omise.Charge{}
	op := &operations.CreateCharge{
		Amount:      req.AmountCents,
		Currency:    req.Currency,
		Card:        req.CardToken,
		Description: req.Description,
		Metadata:    map[string]interface{}{"purchase_id": req.PurchaseID},
	}
	if err := g.client.Do(ch, op); err != nil {
		return nil, fmt.Errorf("omise charge failed: %w", err)
	}

	charge := &store.Charge{ID: ch.ID}
	switch string(ch.Status) {
	case "successful":
		charge.Status = store.StatusPaid
	case "failed":
		charge.Status = store.StatusDeclined
		if ch.FailureCode != nil {
			charge.FailureCode = *ch.FailureCode
		}
		if ch.FailureMessage != nil {
			charge.FailureMessage = *ch.FailureMessage
		}
	default:
		// pending and awaiting authorization settle through Omise webhooks
		charge.Status = store.StatusPending
	}

	g.logger.Info("Omise charge ", ch.ID, " for purchase ", req.PurchaseID, " is ", string(ch.Status))
	return charge, nil
}
