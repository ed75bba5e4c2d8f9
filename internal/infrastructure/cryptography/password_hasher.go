package cryptography

import (
	"errors"
	"fmt"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher struct that implements the PasswordHasher interface
type bcryptHasher struct {
	cost   int
	logger logger.Logger
}

// NewBcryptHasher creates a PasswordHasher. A zero cost selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int, logger logger.Logger) (accounts.PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{
		cost:   cost,
		logger: logger,
	}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns accounts.ErrInvalidCredentials when password does not match hash
func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return accounts.ErrInvalidCredentials
	}
	h.logger.Warn("Password hash comparison failed: ", err)
	return accounts.ErrInvalidCredentials
}
