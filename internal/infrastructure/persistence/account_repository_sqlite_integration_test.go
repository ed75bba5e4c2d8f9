//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSqliteRepository_CreateAndLookup(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	client := CreateTestClient(t, "RockFan")
	require.NoError(t, tc.ClientRepo.Create(ctx, client))

	byName, err := tc.ClientRepo.GetByUsername(ctx, "rockfan")
	require.NoError(t, err)
	assert.Equal(t, client.ID, byName.ID)
	assert.Equal(t, "RockFan", byName.Username)

	byEmail, err := tc.ClientRepo.GetByEmail(ctx, "ROCKFAN@example.com")
	require.NoError(t, err)
	assert.Equal(t, client.ID, byEmail.ID)

	_, err = tc.ClientRepo.GetByID(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestClientSqliteRepository_DuplicateUsername(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.ClientRepo.Create(ctx, CreateTestClient(t, "carl")))

	dup := CreateTestClient(t, "CARL")
	dup.Email = "other@example.com"
	assert.ErrorIs(t, tc.ClientRepo.Create(ctx, dup), accounts.ErrConflict)
}

func TestClientSqliteRepository_UpdateByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	client := CreateTestClient(t, "miner")
	require.NoError(t, tc.ClientRepo.Create(ctx, client))

	client.MailHandle = "miner@yates"
	require.NoError(t, tc.ClientRepo.UpdateByID(ctx, client))

	got, err := tc.ClientRepo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "miner@yates", got.MailHandle)
}

func TestEmployeeSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	ceo := CreateTestEmployee(t, "000001", accounts.RoleCEO)
	intern := CreateTestEmployee(t, "000002", accounts.RoleIntern)
	require.NoError(t, tc.EmployeeRepo.Create(ctx, intern))
	require.NoError(t, tc.EmployeeRepo.Create(ctx, ceo))

	assert.ErrorIs(t, tc.EmployeeRepo.Create(ctx, CreateTestEmployee(t, "000001", accounts.RoleSales)), accounts.ErrConflict)

	got, err := tc.EmployeeRepo.GetByNumber(ctx, "000001")
	require.NoError(t, err)
	assert.False(t, got.HasPassword())

	got.PasswordHash = "$2a$10$hash"
	require.NoError(t, tc.EmployeeRepo.UpdateByID(ctx, got))

	got, err = tc.EmployeeRepo.GetByID(ctx, ceo.ID)
	require.NoError(t, err)
	assert.True(t, got.HasPassword())

	list, err := tc.EmployeeRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "000001", list[0].EmployeeNumber)

	_, err = tc.EmployeeRepo.GetByNumber(ctx, "999999")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}
