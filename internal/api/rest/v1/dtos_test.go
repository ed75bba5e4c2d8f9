//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/stretchr/testify/require"
)

type validatable interface {
	Validate() error
}

func TestRequests_Validate(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		request   validatable
		shouldErr bool
	}{
		{"Valid register", &RegisterRequest{Username: "carl_1", Email: "carl@example.com", Password: "long enough"}, false},
		{"Register username with space", &RegisterRequest{Username: "carl y", Email: "carl@example.com", Password: "long enough"}, true},
		{"Register bad email", &RegisterRequest{Username: "carl", Email: "not-an-email", Password: "long enough"}, true},
		{"Register short password", &RegisterRequest{Username: "carl", Email: "carl@example.com", Password: "short"}, true},

		{"Valid client login", &LoginRequest{Kind: "client", Identifier: "carl", Password: "x"}, false},
		{"Login unknown kind", &LoginRequest{Kind: "robot", Identifier: "carl", Password: "x"}, true},

		{"Set password with code", &SetPasswordRequest{NewPassword: "long enough", AccessCode: "123456"}, false},
		{"Set password code not numeric", &SetPasswordRequest{NewPassword: "long enough", AccessCode: "12ab56"}, true},

		{"Valid employee", &CreateEmployeeRequest{EmployeeNumber: "000123", Name: "Dana", Role: "engineer"}, false},
		{"Employee number too short", &CreateEmployeeRequest{EmployeeNumber: "123", Name: "Dana", Role: "engineer"}, true},
		{"Employee unknown role", &CreateEmployeeRequest{EmployeeNumber: "000123", Name: "Dana", Role: "wizard"}, true},

		{"Conversation without recipients", &StartConversationRequest{Subject: "hi", Body: "hi"}, true},
		{"Conversation with empty recipient", &StartConversationRequest{Recipients: []string{""}, Subject: "hi", Body: "hi"}, true},

		{"Task status unknown", &UpdateTaskStatusRequest{Status: "blocked"}, true},
		{"Task status done", &UpdateTaskStatusRequest{Status: "done"}, false},

		{"Budget zero limit", &CreateBudgetRequest{Name: "Rent", LimitCents: 0}, true},
		{"Transaction zero amount", &AddTransactionRequest{AmountCents: 0, Category: "food"}, true},
		{"Transaction refund", &AddTransactionRequest{AmountCents: 500, Category: "refund"}, false},

		{"Paycheck period reversed", &IssuePaycheckRequest{EmployeeID: testEmployeePrincipal.ID, PeriodStart: start, PeriodEnd: start.Add(-time.Hour)}, true},
		{"Paycheck valid", &IssuePaycheckRequest{EmployeeID: testEmployeePrincipal.ID, PeriodStart: start, PeriodEnd: start.AddDate(0, 0, 14)}, false},

		{"Empty cart", &QuoteRequest{}, true},
		{"Checkout without card", &CheckoutRequest{QuoteRequest: QuoteRequest{Items: []CartItemRequest{{ProductID: "rock", Quantity: 1}}}}, true},

		{"Zero clicks", &ClickRequest{Clicks: 0}, true},
		{"Negative count", &CountRequest{Count: -1}, true},
		{"Sync without state", &SyncRequest{BaseVersion: 1}, true},
		{"Sync with state", &SyncRequest{BaseVersion: 1, State: game.NewState(start)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestQuoteRequest_CartItems(t *testing.T) {
	request := QuoteRequest{Items: []CartItemRequest{{ProductID: "rock", Quantity: 2}, {ProductID: "pickaxe", Quantity: 1}}}

	items := request.CartItems()

	require.Len(t, items, 2)
	require.Equal(t, "rock", items[0].ProductID)
	require.Equal(t, 2, items[0].Quantity)
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "Operation successful",
	}

	require.Equal(t, "Operation successful", infoResp.Message)
}
