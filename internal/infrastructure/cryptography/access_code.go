package cryptography

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
)

// accessCodeGenerator derives a numeric code from HMAC-SHA256 over the window counter,
// truncated as in RFC 4226.
type accessCodeGenerator struct {
	secret []byte
	window time.Duration
	digits int
	logger logger.Logger
}

// NewAccessCodeService creates the rotating access code source
func NewAccessCodeService(secret string, window time.Duration, digits int, logger logger.Logger) (accounts.AccessCodeService, error) {
	if len(secret) < 16 {
		return nil, errors.New("access code secret must be at least 16 bytes")
	}
	if window < time.Second {
		return nil, errors.New("access code window must be at least one second")
	}
	if digits < 4 || digits > 10 {
		return nil, fmt.Errorf("access code digits must be between 4 and 10, got %d", digits)
	}
	return &accessCodeGenerator{
		secret: []byte(secret),
		window: window,
		digits: digits,
		logger: logger,
	}, nil
}

func (g *accessCodeGenerator) counter(now time.Time) uint64 {
	return uint64(now.Unix() / int64(g.window/time.Second))
}

func (g *accessCodeGenerator) code(counter uint64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha256.New, g.secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
	mod := uint32(math.Pow10(g.digits))
	if g.digits > 9 {
		// 10 digits exceed uint32, keep the full truncated value
		return fmt.Sprintf("%0*d", g.digits, value)
	}
	return fmt.Sprintf("%0*d", g.digits, value%mod)
}

// Current returns the code of the window containing now and the end of that window
func (g *accessCodeGenerator) Current(now time.Time) (string, time.Time) {
	c := g.counter(now)
	seconds := int64(g.window / time.Second)
	expiresAt := time.Unix(int64(c+1)*seconds, 0).UTC()
	return g.code(c), expiresAt
}

// Verify accepts the code of the current and of the previous window
func (g *accessCodeGenerator) Verify(code string, now time.Time) bool {
	if len(code) != g.digits {
		return false
	}
	c := g.counter(now)
	candidates := []uint64{c}
	if c > 0 {
		candidates = append(candidates, c-1)
	}
	for _, candidate := range candidates {
		if subtle.ConstantTimeCompare([]byte(g.code(candidate)), []byte(code)) == 1 {
			return true
		}
	}
	g.logger.Debug("Rejected access code")
	return false
}
