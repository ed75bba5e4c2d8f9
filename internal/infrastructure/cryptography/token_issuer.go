package cryptography

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	jwt "github.com/golang-jwt/jwt/v5"
)

const tokenIssuerName = "yates-inc"

// Claims are the JWT claims of a session token. The subject is the account id.
type Claims struct {
	Kind string `json:"kind"`
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
	logger logger.Logger
}

// NewJWTIssuer creates a TokenIssuer signing HS256 tokens valid for ttl
func NewJWTIssuer(secret string, ttl time.Duration, logger logger.Logger) (accounts.TokenIssuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("jwt secret must be at least 16 bytes")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &jwtIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (j *jwtIssuer) Issue(principal *accounts.Principal, now time.Time) (string, *accounts.TokenClaims, error) {
	expiresAt := now.Add(j.ttl)
	claims := Claims{
		Kind: principal.Kind,
		Role: principal.Role,
		Name: principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal.ID,
			Issuer:    tokenIssuerName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, &accounts.TokenClaims{
		TokenID:   claims.ID,
		Principal: principal,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (j *jwtIssuer) Verify(token string) (*accounts.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuerName),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, errors.New("invalid token")
	}

	return &accounts.TokenClaims{
		TokenID: claims.ID,
		Principal: &accounts.Principal{
			ID:   claims.Subject,
			Kind: claims.Kind,
			Name: claims.Name,
			Role: claims.Role,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
