package connector

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// House card tokens with a fixed outcome
const (
	HouseDeclineToken = "tok_decline"
	HousePendingToken = "tok_pending"
)

// houseGateway settles charges in-house. Every token succeeds except the
// decline and pending test tokens.
type houseGateway struct {
	logger logger.Logger
}

// NewHouseGateway creates the in-house PaymentGateway
func NewHouseGateway(logger logger.Logger) store.PaymentGateway {
	return &houseGateway{logger: logger}
}

func (g *houseGateway) Charge(ctx context.Context, req store.ChargeRequest) (*store.Charge, error) {
	if req.AmountCents <= 0 || strings.TrimSpace(req.CardToken) == "" || req.Currency == "" {
		return nil, fmt.Errorf("%w: invalid charge parameters", validators.ErrValidation)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	charge := &store.Charge{ID: "house_" + uuid.NewString(), Status: store.StatusPaid}
	switch req.CardToken {
	case HouseDeclineToken:
		charge.Status = store.StatusDeclined
		charge.FailureCode = "insufficient_fund"
		charge.FailureMessage = "the card was declined"
	case HousePendingToken:
		charge.Status = store.StatusPending
	}

	g.logger.Info("House charge ", charge.ID, " for purchase ", req.PurchaseID, " is ", charge.Status)
	return charge, nil
}
