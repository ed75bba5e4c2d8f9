//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_And_Login_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	client, err := services.AccountService.Register(ctx, accounts.RegisterRequest{
		Username: "rock_fan",
		Email:    " Rock.Fan@Example.com ",
		Password: TestPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "rock.fan@example.com", client.Email)
	assert.NotEqual(t, TestPassword, client.PasswordHash)
	assert.Equal(t, []string{events.AccountRegistered}, services.Publisher.Keys())

	for _, identifier := range []string{"rock_fan", "ROCK_FAN", "rock.fan@example.com"} {
		session, err := services.AccountService.Login(ctx, accounts.KindClient, identifier, TestPassword)
		require.NoError(t, err, identifier)
		assert.Equal(t, client.ID, session.Principal.ID)
		assert.Equal(t, accounts.RoleClient, session.Principal.Role)
		assert.NotEmpty(t, session.Token)
	}
}

func TestAccountService_Register_Conflict(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.AccountService.Register(ctx, accounts.RegisterRequest{Username: "carl", Email: "carl@example.com", Password: TestPassword})
	require.NoError(t, err)

	_, err = services.AccountService.Register(ctx, accounts.RegisterRequest{Username: "CARL", Email: "other@example.com", Password: TestPassword})
	assert.ErrorIs(t, err, accounts.ErrConflict)

	_, err = services.AccountService.Register(ctx, accounts.RegisterRequest{Username: "carl2", Email: "CARL@example.com", Password: TestPassword})
	assert.ErrorIs(t, err, accounts.ErrConflict)
}

func TestAccountService_Register_ShortPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.AccountService.Register(context.Background(), accounts.RegisterRequest{Username: "carl", Email: "carl@example.com", Password: "short"})
	assert.Error(t, err)
	assert.Empty(t, services.Publisher.Keys())
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.AccountService.Register(ctx, accounts.RegisterRequest{Username: "carl", Email: "carl@example.com", Password: TestPassword})
	require.NoError(t, err)
	services.CreateEmployee(t, "100001", accounts.RoleEngineer)

	tests := []struct {
		name       string
		kind       string
		identifier string
		password   string
	}{
		{"wrong password", accounts.KindClient, "carl", "wrong password"},
		{"unknown username", accounts.KindClient, "nobody", TestPassword},
		{"unknown email", accounts.KindClient, "nobody@example.com", TestPassword},
		{"employee without password", accounts.KindEmployee, "100001", TestPassword},
		{"unknown employee", accounts.KindEmployee, "999999", TestPassword},
		{"unknown kind", "robot", "carl", TestPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.AccountService.Login(ctx, tt.kind, tt.identifier, tt.password)
			assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)
		})
	}
}

func TestAccountService_EmployeePassword_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	employee := services.CreateEmployee(t, "100002", accounts.RoleSales)

	needs, err := services.AccountService.CheckPassword(ctx, employee.EmployeeNumber)
	require.NoError(t, err)
	assert.True(t, needs)

	err = services.AccountService.SetPassword(ctx, accounts.SetPasswordRequest{
		EmployeeNumber: employee.EmployeeNumber,
		NewPassword:    TestPassword,
		AccessCode:     "000000x",
	})
	assert.ErrorIs(t, err, accounts.ErrInvalidAccessCode)

	code, _ := services.AccessCodes.Current(time.Now().UTC())
	err = services.AccountService.SetPassword(ctx, accounts.SetPasswordRequest{
		EmployeeNumber: employee.EmployeeNumber,
		NewPassword:    TestPassword,
		AccessCode:     code,
	})
	require.NoError(t, err)

	needs, err = services.AccountService.CheckPassword(ctx, employee.EmployeeNumber)
	require.NoError(t, err)
	assert.False(t, needs)

	session, err := services.AccountService.Login(ctx, accounts.KindEmployee, employee.EmployeeNumber, TestPassword)
	require.NoError(t, err)
	assert.Equal(t, accounts.RoleSales, session.Principal.Role)

	// a second first-time set is refused
	err = services.AccountService.SetPassword(ctx, accounts.SetPasswordRequest{
		EmployeeNumber: employee.EmployeeNumber,
		NewPassword:    "another password",
		AccessCode:     code,
	})
	assert.ErrorIs(t, err, accounts.ErrPasswordAlreadySet)

	err = services.AccountService.SetPassword(ctx, accounts.SetPasswordRequest{
		EmployeeNumber:  employee.EmployeeNumber,
		NewPassword:     "another password",
		CurrentPassword: "not the password",
	})
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)

	err = services.AccountService.SetPassword(ctx, accounts.SetPasswordRequest{
		EmployeeNumber:  employee.EmployeeNumber,
		NewPassword:     "another password",
		CurrentPassword: TestPassword,
	})
	require.NoError(t, err)

	_, err = services.AccountService.Login(ctx, accounts.KindEmployee, employee.EmployeeNumber, "another password")
	assert.NoError(t, err)
}

func TestAccountService_CheckPassword_UnknownEmployee(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.AccountService.CheckPassword(context.Background(), "123456")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestAccountService_Logout_RevokesToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.AccountService.Register(ctx, accounts.RegisterRequest{Username: "carl", Email: "carl@example.com", Password: TestPassword})
	require.NoError(t, err)
	session, err := services.AccountService.Login(ctx, accounts.KindClient, "carl", TestPassword)
	require.NoError(t, err)

	claims, err := services.Tokens.Verify(session.Token)
	require.NoError(t, err)

	require.NoError(t, services.AccountService.Logout(ctx, claims.TokenID, claims.ExpiresAt))

	revoked, err := services.Sessions.IsRevoked(ctx, claims.TokenID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestDirectoryService_CreateEmployee_Roles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	ceo := services.CreateEmployee(t, "000001", accounts.RoleCEO).Principal()
	manager := services.CreateEmployee(t, "000002", accounts.RoleManager).Principal()
	intern := services.CreateEmployee(t, "000003", accounts.RoleIntern).Principal()
	client := &accounts.Principal{ID: "c", Kind: accounts.KindClient, Role: accounts.RoleClient}

	req := func(number, role string) accounts.CreateEmployeeRequest {
		return accounts.CreateEmployeeRequest{EmployeeNumber: number, Name: "New Hire", Role: role, SalaryCents: 3_900_000}
	}

	_, err := services.DirectoryService.CreateEmployee(ctx, intern, req("000010", accounts.RoleIntern))
	assert.ErrorIs(t, err, accounts.ErrForbidden)

	_, err = services.DirectoryService.CreateEmployee(ctx, client, req("000011", accounts.RoleIntern))
	assert.ErrorIs(t, err, accounts.ErrForbidden)

	_, err = services.DirectoryService.CreateEmployee(ctx, manager, req("000012", accounts.RoleCEO))
	assert.ErrorIs(t, err, accounts.ErrForbidden)

	hired, err := services.DirectoryService.CreateEmployee(ctx, manager, req("000013", accounts.RoleEngineer))
	require.NoError(t, err)
	assert.False(t, hired.HasPassword())

	_, err = services.DirectoryService.CreateEmployee(ctx, ceo, req("000014", accounts.RoleCEO))
	require.NoError(t, err)

	_, err = services.DirectoryService.CreateEmployee(ctx, ceo, req("000013", accounts.RoleSales))
	assert.ErrorIs(t, err, accounts.ErrConflict)

	list, err := services.DirectoryService.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}
