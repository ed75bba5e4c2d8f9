package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// redisSessionStore keeps revoked token ids until their natural expiry
type redisSessionStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisSessionStore connects to Redis and verifies the connection
func NewRedisSessionStore(ctx context.Context, settings *config.RedisSettings, logger logger.Logger) (accounts.SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("Connected to Redis at ", settings.Addr)
	return &redisSessionStore{
		client: client,
		logger: logger,
	}, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}
