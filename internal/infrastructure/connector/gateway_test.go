//go:build unit
// +build unit

package connector

import (
	"context"
	"testing"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseGateway(t *testing.T) {
	gateway := NewHouseGateway(testutil.SetupTestLogger(t))
	ctx := context.Background()
	req := store.ChargeRequest{PurchaseID: "p-1", AmountCents: 1299, Currency: "usd", CardToken: "tok_visa"}

	charge, err := gateway.Charge(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, store.StatusPaid, charge.Status)
	assert.Contains(t, charge.ID, "house_")

	req.CardToken = HouseDeclineToken
	charge, err = gateway.Charge(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, store.StatusDeclined, charge.Status)
	assert.NotEmpty(t, charge.FailureCode)

	req.CardToken = HousePendingToken
	charge, err = gateway.Charge(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, store.StatusPending, charge.Status)

	req.CardToken = " "
	_, err = gateway.Charge(ctx, req)
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	req.CardToken = "tok_visa"
	_, err = gateway.Charge(cancelled, req)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogPublisher(t *testing.T) {
	pub := NewLogPublisher(testutil.SetupTestLogger(t))
	assert.NoError(t, pub.Publish(context.Background(), events.MailSent, events.MailSentPayload{MessageID: "m-1"}))
	assert.NoError(t, pub.Close())
}
