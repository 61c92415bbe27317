package repository

import (
	"RobloxHelper_Service/internal/prc-gateway/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyEvicter drops a shared cache entry for a server key.
type KeyEvicter interface {
	EvictServerKey(ctx context.Context, serverID int64) error
}

// CachedServerKeyRepository shares resolved keys between gateway replicas through redis.
type CachedServerKeyRepository interface {
	ServerKeyRepository
	KeyEvicter
}

type cachedServerKeyRepository struct {
	redis    *redis.Client
	repo     ServerKeyRepository
	cacheTTL time.Duration
}

func (*cachedServerKeyRepository) getServerKeyCachedKey(serverID int64) string {
	return fmt.Sprintf("erlc_key:%d", serverID)
}

func (c *cachedServerKeyRepository) FindKey(ctx context.Context, serverID int64) (string, error) {
	cachedKey := c.getServerKeyCachedKey(serverID)
	key, err := c.redis.Get(ctx, cachedKey).Result()
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("cachedServerKeyRepository.FindKey: %w", err)
	}
	key, err = c.repo.FindKey(ctx, serverID)
	if err != nil {
		return "", fmt.Errorf("cachedServerKeyRepository.FindKey: %w", err)
	}
	// the database answer stands even when the cache write fails
	c.redis.Set(ctx, cachedKey, key, c.cacheTTL)
	return key, nil
}

func (c *cachedServerKeyRepository) CreateServerKey(ctx context.Context, serverKey model.ServerKey) (model.ServerKey, error) {
	return c.repo.CreateServerKey(ctx, serverKey)
}

// UpsertServerKey evicts around the write: a FindKey racing the database
// update can refill redis with the old key, so the entry is dropped again
// once the write is committed.
func (c *cachedServerKeyRepository) UpsertServerKey(ctx context.Context, serverKey model.ServerKey) (model.ServerKey, error) {
	if err := c.EvictServerKey(ctx, serverKey.ServerID); err != nil {
		return model.ServerKey{}, fmt.Errorf("cachedServerKeyRepository.UpsertServerKey: %w", err)
	}
	stored, err := c.repo.UpsertServerKey(ctx, serverKey)
	if err != nil {
		return model.ServerKey{}, err
	}
	if err = c.EvictServerKey(ctx, serverKey.ServerID); err != nil {
		return model.ServerKey{}, fmt.Errorf("cachedServerKeyRepository.UpsertServerKey: %w", err)
	}
	return stored, nil
}

func (c *cachedServerKeyRepository) DeleteServerKey(ctx context.Context, serverID int64) error {
	if err := c.EvictServerKey(ctx, serverID); err != nil {
		return fmt.Errorf("cachedServerKeyRepository.DeleteServerKey: %w", err)
	}
	if err := c.repo.DeleteServerKey(ctx, serverID); err != nil {
		return err
	}
	if err := c.EvictServerKey(ctx, serverID); err != nil {
		return fmt.Errorf("cachedServerKeyRepository.DeleteServerKey: %w", err)
	}
	return nil
}

func (c *cachedServerKeyRepository) EvictServerKey(ctx context.Context, serverID int64) error {
	if err := c.redis.Del(ctx, c.getServerKeyCachedKey(serverID)).Err(); err != nil {
		return fmt.Errorf("cachedServerKeyRepository.EvictServerKey: %w", err)
	}
	return nil
}

func NewCachedServerKeyRepository(redis *redis.Client, repo ServerKeyRepository, cacheTTL time.Duration) CachedServerKeyRepository {
	return &cachedServerKeyRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
