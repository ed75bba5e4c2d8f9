//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/connector"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPurchaseRepository struct {
	mock.Mock
}

func (m *mockPurchaseRepository) Create(ctx context.Context, purchase *store.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

func (m *mockPurchaseRepository) UpdateCharge(ctx context.Context, purchaseID, chargeID, status string) error {
	return m.Called(ctx, purchaseID, chargeID, status).Error(0)
}

func (m *mockPurchaseRepository) GetByID(ctx context.Context, purchaseID string) (*store.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	purchase, _ := args.Get(0).(*store.Purchase)
	return purchase, args.Error(1)
}

func (m *mockPurchaseRepository) ListByClient(ctx context.Context, clientID string) ([]*store.Purchase, error) {
	args := m.Called(ctx, clientID)
	purchases, _ := args.Get(0).([]*store.Purchase)
	return purchases, args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Charge(ctx context.Context, req store.ChargeRequest) (*store.Charge, error) {
	args := m.Called(ctx, req)
	charge, _ := args.Get(0).(*store.Charge)
	return charge, args.Error(1)
}

var rockCart = []store.CartItem{{ProductID: "rock", Quantity: 1}}

func newUnitCheckoutService(t *testing.T, repo store.Repository, gateway store.PaymentGateway, log *testutil.RecordingLogger) store.CheckoutService {
	t.Helper()

	settings := &config.StoreSettings{TaxRate: 0.0825, ShippingCents: 499, FreeShippingThresholdCents: 5_000}
	svc, err := NewCheckoutService(settings, "USD", repo, gateway, connector.NewLogPublisher(log), log)
	require.NoError(t, err)
	return svc
}

func createdPurchase(clientID string) interface{} {
	return mock.MatchedBy(func(p *store.Purchase) bool {
		return p.ClientID == clientID && p.Status == store.StatusCreated && p.ChargeID == ""
	})
}

func TestCheckoutService_Checkout_RecordsBeforeCharging(t *testing.T) {
	repo := new(mockPurchaseRepository)
	gateway := new(mockGateway)
	log := &testutil.RecordingLogger{}
	clientID := uuid.NewString()

	var purchaseID string
	repo.On("Create", mock.Anything, createdPurchase(clientID)).
		Run(func(args mock.Arguments) { purchaseID = args.Get(1).(*store.Purchase).ID }).
		Return(nil).Once()
	gateway.On("Charge", mock.Anything, mock.MatchedBy(func(req store.ChargeRequest) bool {
		return req.PurchaseID == purchaseID && req.Currency == "usd"
	})).Return(&store.Charge{ID: "chrg_1", Status: store.StatusPaid}, nil).Once()
	repo.On("UpdateCharge", mock.Anything, mock.AnythingOfType("string"), "chrg_1", store.StatusPaid).Return(nil).Once()

	purchase, err := newUnitCheckoutService(t, repo, gateway, log).Checkout(context.Background(), clientID, rockCart, "tok_visa")

	require.NoError(t, err)
	assert.Equal(t, purchaseID, purchase.ID)
	assert.Equal(t, "chrg_1", purchase.ChargeID)
	assert.Equal(t, store.StatusPaid, purchase.Status)
	repo.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestCheckoutService_Checkout_ChargeNotRecorded(t *testing.T) {
	repo := new(mockPurchaseRepository)
	gateway := new(mockGateway)
	log := &testutil.RecordingLogger{}
	clientID := uuid.NewString()

	repo.On("Create", mock.Anything, createdPurchase(clientID)).Return(nil).Once()
	gateway.On("Charge", mock.Anything, mock.Anything).Return(&store.Charge{ID: "chrg_lost", Status: store.StatusPaid}, nil).Once()
	repo.On("UpdateCharge", mock.Anything, mock.Anything, "chrg_lost", store.StatusPaid).Return(errors.New("connection reset by peer")).Once()

	purchase, err := newUnitCheckoutService(t, repo, gateway, log).Checkout(context.Background(), clientID, rockCart, "tok_visa")

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.Contains(t, err.Error(), "chrg_lost")
	errorRecords := log.Records("ERROR")
	require.Len(t, errorRecords, 1)
	assert.Contains(t, errorRecords[0], "chrg_lost")
	assert.Contains(t, errorRecords[0], clientID)
	repo.AssertExpectations(t)
}

func TestCheckoutService_Checkout_CreateFailsBeforeCharge(t *testing.T) {
	repo := new(mockPurchaseRepository)
	gateway := new(mockGateway)
	log := &testutil.RecordingLogger{}

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database is down")).Once()

	_, err := newUnitCheckoutService(t, repo, gateway, log).Checkout(context.Background(), uuid.NewString(), rockCart, "tok_visa")

	require.Error(t, err)
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_GatewayError(t *testing.T) {
	repo := new(mockPurchaseRepository)
	gateway := new(mockGateway)
	log := &testutil.RecordingLogger{}

	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	gateway.On("Charge", mock.Anything, mock.Anything).Return(nil, errors.New("omise unavailable")).Once()
	repo.On("UpdateCharge", mock.Anything, mock.Anything, "", store.StatusFailed).Return(nil).Once()

	_, err := newUnitCheckoutService(t, repo, gateway, log).Checkout(context.Background(), uuid.NewString(), rockCart, "tok_visa")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "omise unavailable")
	repo.AssertExpectations(t)
}
