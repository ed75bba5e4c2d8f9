//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	clientID := uuid.NewString()

	purchase := &store.Purchase{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Lines: []store.LineItem{
			{ProductID: "rock", Name: "A Rock", Quantity: 1, UnitPriceCents: 19_999, TotalCents: 19_999},
		},
		SubtotalCents: 19_999,
		TaxCents:      1_650,
		TotalCents:    21_649,
		Currency:      "usd",
		ChargeID:      "house_1",
		Status:        store.StatusPaid,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, tc.PurchaseRepo.Create(ctx, purchase))

	got, err := tc.PurchaseRepo.GetByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, purchase.Lines, got.Lines)
	assert.Equal(t, purchase.TotalCents, got.TotalCents)

	list, err := tc.PurchaseRepo.ListByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = tc.PurchaseRepo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPurchaseSqliteRepository_UpdateCharge(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	purchase := &store.Purchase{
		ID:       uuid.NewString(),
		ClientID: uuid.NewString(),
		Lines: []store.LineItem{
			{ProductID: "yates-water", Name: "Yates Water", Quantity: 1, UnitPriceCents: 1_299, TotalCents: 1_299},
		},
		SubtotalCents: 1_299,
		TaxCents:      107,
		ShippingCents: 499,
		TotalCents:    1_905,
		Currency:      "usd",
		Status:        store.StatusCreated,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, tc.PurchaseRepo.Create(ctx, purchase))

	require.NoError(t, tc.PurchaseRepo.UpdateCharge(ctx, purchase.ID, "house_7", store.StatusPaid))
	got, err := tc.PurchaseRepo.GetByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, "house_7", got.ChargeID)
	assert.Equal(t, store.StatusPaid, got.Status)

	err = tc.PurchaseRepo.UpdateCharge(ctx, purchase.ID, "", store.StatusPaid)
	assert.ErrorIs(t, err, validators.ErrValidation)

	err = tc.PurchaseRepo.UpdateCharge(ctx, uuid.NewString(), "", store.StatusFailed)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGameSaveSqliteRepository_OptimisticUpdate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	now := time.Now().UTC()
	userID := uuid.NewString()

	_, err := tc.SaveRepo.Get(ctx, userID)
	assert.ErrorIs(t, err, game.ErrNotFound)

	save := &game.Save{UserID: userID, Version: 1, State: game.NewState(now), UpdatedAt: now}
	require.NoError(t, tc.SaveRepo.Create(ctx, save))
	assert.ErrorIs(t, tc.SaveRepo.Create(ctx, save), game.ErrConflict)

	next := &game.Save{UserID: userID, Version: 2, State: save.State.Clone(), UpdatedAt: now}
	next.State.Dollars = 42
	next.State.Holdings["ROCK"] = 3
	require.NoError(t, tc.SaveRepo.Update(ctx, next, 1))

	stale := &game.Save{UserID: userID, Version: 2, State: save.State.Clone(), UpdatedAt: now}
	assert.ErrorIs(t, tc.SaveRepo.Update(ctx, stale, 1), game.ErrConflict)

	got, err := tc.SaveRepo.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.InDelta(t, 42, got.State.Dollars, 1e-9)
	assert.Equal(t, int64(3), got.State.Holdings["ROCK"])
	assert.Equal(t, game.StarterPickaxe, got.State.EquippedPickaxe)
}
