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
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEngine(t *testing.T, tokens *MockTokenIssuer, sessions *MockSessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTAuth(tokens, sessions, testutil.SetupTestLogger(t)), func(c *gin.Context) {
		c.JSON(http.StatusOK, PrincipalResponse{ID: principalFrom(c).ID, Kind: principalFrom(c).Kind})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	claims := &accounts.TokenClaims{TokenID: "jti-1", Principal: testClientPrincipal, ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *MockTokenIssuer, sessions *MockSessionStore)
		wantStatus int
	}{
		{"missing header", "", func(*MockTokenIssuer, *MockSessionStore) {}, http.StatusUnauthorized},
		{"not a bearer token", "Basic Y2FybDpwdw==", func(*MockTokenIssuer, *MockSessionStore) {}, http.StatusUnauthorized},
		{"invalid token", "Bearer garbage", func(tokens *MockTokenIssuer, _ *MockSessionStore) {
			tokens.On("Verify", "garbage").Return(nil, errors.New("signature is invalid"))
		}, http.StatusUnauthorized},
		{"logged out", "Bearer good", func(tokens *MockTokenIssuer, sessions *MockSessionStore) {
			tokens.On("Verify", "good").Return(claims, nil)
			sessions.On("IsRevoked", mock.Anything, "jti-1").Return(true, nil)
		}, http.StatusUnauthorized},
		{"session store down", "Bearer good", func(tokens *MockTokenIssuer, sessions *MockSessionStore) {
			tokens.On("Verify", "good").Return(claims, nil)
			sessions.On("IsRevoked", mock.Anything, "jti-1").Return(false, errors.New("connection refused"))
		}, http.StatusServiceUnavailable},
		{"valid", "Bearer good", func(tokens *MockTokenIssuer, sessions *MockSessionStore) {
			tokens.On("Verify", "good").Return(claims, nil)
			sessions.On("IsRevoked", mock.Anything, "jti-1").Return(false, nil)
		}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := new(MockTokenIssuer)
			sessions := new(MockSessionStore)
			tt.setup(tokens, sessions)
			r := newAuthEngine(t, tokens, sessions)

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp PrincipalResponse
				testutil.DecodeJSON(t, w, &resp)
				assert.Equal(t, testClientPrincipal.ID, resp.ID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *accounts.Principal
		wantStatus int
	}{
		{"client", testClientPrincipal, http.StatusForbidden},
		{"engineer", testEmployeePrincipal, http.StatusForbidden},
		{"manager", testManagerPrincipal, http.StatusOK},
		{"anonymous", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewJSONContext(t, http.MethodPost, "/employees", nil)
			if tt.principal != nil {
				withPrincipal(c, tt.principal)
			}

			RequireRole(accounts.RoleCEO, accounts.RoleManager)(c)
			if !c.IsAborted() {
				c.Status(http.StatusOK)
			}

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireEmployee(t *testing.T) {
	c, w := testutil.NewJSONContext(t, http.MethodGet, "/tasks", nil)
	withPrincipal(c, testClientPrincipal)

	RequireEmployee()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(&config.RateLimitSettings{RequestsPerSecond: 1, Burst: 3})
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow("carl"), "request %d within burst", i)
	}
	assert.False(t, limiter.Allow("carl"))
	assert.True(t, limiter.Allow("dana"), "keys have separate buckets")

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("carl"), "a token refills after one second")
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(&config.RateLimitSettings{RequestsPerSecond: 1, Burst: 1})
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("carl")
	now = now.Add(limiterIdleTTL + time.Minute)
	limiter.Allow("dana")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.visitors, "carl")
	assert.Contains(t, limiter.visitors, "dana")
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(&config.RateLimitSettings{RequestsPerSecond: 0.001, Burst: 1})
	r := gin.New()
	r.POST("/auth/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
