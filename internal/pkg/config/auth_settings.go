package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures session tokens and the rotating employee access code
type AuthSettings struct {
	JWTSecret        string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTL         time.Duration `mapstructure:"token_ttl" validate:"required"`
	AccessCodeSecret string        `mapstructure:"access_code_secret" validate:"required,min=16"`
	AccessCodeWindow time.Duration `mapstructure:"access_code_window" validate:"required"`
	AccessCodeDigits int           `mapstructure:"access_code_digits" validate:"min=4,max=10"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.AccessCodeWindow < time.Second {
		return fmt.Errorf("access code window must be at least one second")
	}

	return nil
}

// RateLimitSettings configures the per-client token bucket applied to login and game clicks
type RateLimitSettings struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" validate:"min=1"`
}
