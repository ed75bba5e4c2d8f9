//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	tokens := new(MockTokenIssuer)
	sessions := new(MockSessionStore)
	marketService := new(MockMarketService)
	directoryService := new(MockDirectoryService)

	tokens.On("Verify", "client-token").Return(&accounts.TokenClaims{TokenID: "jti-client", Principal: testClientPrincipal, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	tokens.On("Verify", mock.Anything).Return(nil, errors.New("token is malformed"))
	sessions.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)
	directoryService.On("GetClient", mock.Anything, testClientPrincipal.ID).Return(&accounts.Client{ID: testClientPrincipal.ID, Username: "carl"}, nil)
	marketService.On("Quotes").Return([]game.StockQuote{{Symbol: "ROCK", Price: 25}})

	r := gin.New()
	SetupRoutes(r, &Services{
		AccountService:   new(MockAccountService),
		DirectoryService: directoryService,
		AccessCodes:      new(MockAccessCodeService),
		Tokens:           tokens,
		Sessions:         sessions,
		MailService:      new(MockMailService),
		TaskService:      new(MockTaskService),
		BudgetService:    new(MockBudgetService),
		PayrollService:   new(MockPayrollService),
		CheckoutService:  new(MockCheckoutService),
		GameService:      new(MockGameService),
		MarketService:    marketService,
	}, nil, testutil.SetupTestLogger(t))
	return r
}

func TestSetupRoutes_Access(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method     string
		url        string
		token      string
		wantStatus int
	}{
		{"GET", BasePath + "/store/products", "", http.StatusOK},
		{"GET", BasePath + "/game/catalog", "", http.StatusOK},
		{"GET", BasePath + "/game/market", "", http.StatusOK},
		{"POST", BasePath + "/auth/login", "", http.StatusBadRequest},
		{"GET", BasePath + "/me", "", http.StatusUnauthorized},
		{"GET", BasePath + "/game", "", http.StatusUnauthorized},
		{"GET", BasePath + "/budgets", "not-a-token", http.StatusUnauthorized},
		{"GET", BasePath + "/me", "client-token", http.StatusOK},
		{"GET", BasePath + "/tasks", "client-token", http.StatusForbidden},
		{"GET", BasePath + "/access-code", "client-token", http.StatusForbidden},
		{"POST", BasePath + "/paychecks", "client-token", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
