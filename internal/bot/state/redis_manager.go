package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladimiradmaev/macrofit/internal/config"
	"github.com/vladimiradmaev/macrofit/internal/domain"
	"github.com/vladimiradmaev/macrofit/internal/logger"
)

// RedisManager manages user states using Redis
type RedisManager struct {
	client *redis.Client
	ttl    time.Duration
}

var _ StateManager = (*RedisManager)(nil)

// NewRedisManager creates a new Redis-based state manager
func NewRedisManager(cfg config.RedisConfig) (*RedisManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisManager{
		client: client,
		ttl:    ttl,
	}, nil
}

func stateKey(userID int64) string   { return fmt.Sprintf("user:%d:state", userID) }
func profileKey(userID int64) string { return fmt.Sprintf("user:%d:profile", userID) }

// SetUserState sets the state for a user with TTL
func (m *RedisManager) SetUserState(userID int64, state string) {
	ctx := context.Background()
	if err := m.client.Set(ctx, stateKey(userID), state, m.ttl).Err(); err != nil {
		logger.Warn("Failed to save user state", "user_id", userID, "error", err)
	}
}

// GetUserState gets the state for a user
func (m *RedisManager) GetUserState(userID int64) string {
	ctx := context.Background()
	result := m.client.Get(ctx, stateKey(userID))
	if result.Err() == redis.Nil {
		return None
	}
	if result.Err() != nil {
		logger.Warn("Failed to load user state", "user_id", userID, "error", result.Err())
		return None
	}
	return result.Val()
}

// ClearUserState clears the state for a user
func (m *RedisManager) ClearUserState(userID int64) {
	m.client.Del(context.Background(), stateKey(userID))
}

// SetProfile stores the working profile as JSON, refreshing its TTL
func (m *RedisManager) SetProfile(userID int64, profile domain.UserProfile) {
	data, err := json.Marshal(profile)
	if err != nil {
		logger.Warn("Failed to encode profile", "user_id", userID, "error", err)
		return
	}

	ctx := context.Background()
	if err := m.client.Set(ctx, profileKey(userID), data, m.ttl).Err(); err != nil {
		logger.Warn("Failed to save profile", "user_id", userID, "error", err)
	}
}

// GetProfile gets the working profile, falling back to the default one
func (m *RedisManager) GetProfile(userID int64) (domain.UserProfile, bool) {
	ctx := context.Background()
	result := m.client.Get(ctx, profileKey(userID))
	if result.Err() != nil {
		if result.Err() != redis.Nil {
			logger.Warn("Failed to load profile", "user_id", userID, "error", result.Err())
		}
		return domain.DefaultProfile(), false
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(result.Val()), &profile); err != nil {
		logger.Warn("Discarding unreadable profile", "user_id", userID, "error", err)
		return domain.DefaultProfile(), false
	}
	return profile, true
}

// ClearProfile forgets the user's working profile
func (m *RedisManager) ClearProfile(userID int64) {
	m.client.Del(context.Background(), profileKey(userID))
}

// Close closes the Redis connection
func (m *RedisManager) Close() error {
	return m.client.Close()
}
