package v1

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"golang.org/x/time/rate"
)

// Context keys set by JWTAuth
const (
	principalKey = "principal"
	claimsKey    = "claims"
)

// JWTAuth verifies the bearer token, rejects revoked sessions and stores the principal
// and claims in the request context.
func JWTAuth(tokens accounts.TokenIssuer, sessions accounts.SessionStore, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token"})
			return
		}

		revoked, err := sessions.IsRevoked(c.Request.Context(), claims.TokenID)
		if err != nil {
			logger.Error("Failed to check session revocation: ", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{Message: "session store unavailable"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "session has been logged out"})
			return
		}

		c.Set(principalKey, claims.Principal)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireEmployee rejects principals that are not employees
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := principalFrom(c)
		if p == nil || !p.IsEmployee() {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "employees only"})
			return
		}
		c.Next()
	}
}

// RequireRole rejects employees whose role is not listed
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := principalFrom(c)
		if p == nil || !p.IsEmployee() || !p.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient role"})
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) *accounts.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*accounts.Principal)
	return p
}

func claimsFrom(c *gin.Context) *accounts.TokenClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*accounts.TokenClaims)
	return claims
}

// limiterIdleTTL is how long an unused per-key limiter is kept
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per key: the principal when authenticated,
// otherwise the client IP.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a RateLimiter from the configured rate and burst
func NewRateLimiter(settings *config.RateLimitSettings) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(settings.RequestsPerSecond),
		burst:    settings.Burst,
		now:      time.Now,
	}
}

// Allow reports whether the key may make a request now
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if now.Sub(l.lastSweep) > time.Minute {
		for k, other := range l.visitors {
			if now.Sub(other.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	return v.limiter.AllowN(now, 1)
}

// Middleware aborts requests over the limit with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if p := principalFrom(c); p != nil {
			key = p.ID
		}
		if !l.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
