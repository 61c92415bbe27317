package prc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=key_cache.go -destination=mock_key_store_test.go -package=prc
//go:generate mockgen -source=key_cache.go -destination=../../internal/prc-gateway/mocks/prc/key_cache_mock.go -package=mockprc

// KeyStore is the persistent server id -> key lookup.
// FindKey must return an error wrapping ErrServerLinkNotFound when the id has no key.
type KeyStore interface {
	FindKey(ctx context.Context, serverID int64) (string, error)
}

type KeyCache interface {
	Resolve(ctx context.Context, serverID int64) (string, error)
	// Invalidate drops a cached key so the next Resolve goes back to the store.
	// Keys are otherwise kept for the lifetime of the cache.
	Invalidate(serverID int64)
}

type keyCache struct {
	store       KeyStore
	mu          sync.RWMutex
	keys        map[int64]string
	// generations is bumped by Invalidate; a lookup stores its result only if
	// the generation it started under is still current.
	generations map[int64]uint64
	lookups     singleflight.Group
	metrics     *MetricsCollector
}

func (k *keyCache) Resolve(ctx context.Context, serverID int64) (string, error) {
	k.mu.RLock()
	key, ok := k.keys[serverID]
	k.mu.RUnlock()
	if ok {
		k.metrics.RecordKeyCacheHit()
		return key, nil
	}
	k.metrics.RecordKeyCacheMiss()

	v, err, _ := k.lookups.Do(lookupKey(serverID), func() (interface{}, error) {
		k.mu.RLock()
		generation := k.generations[serverID]
		k.mu.RUnlock()

		found, e := k.store.FindKey(ctx, serverID)
		if e != nil {
			return "", e
		}
		k.mu.Lock()
		if k.generations[serverID] == generation {
			k.keys[serverID] = found
		}
		k.mu.Unlock()
		return found, nil
	})
	if err != nil {
		if errors.Is(err, ErrServerLinkNotFound) {
			return "", ErrServerLinkNotFound
		}
		return "", fmt.Errorf("KeyCache.Resolve: %w", err)
	}
	return v.(string), nil
}

func (k *keyCache) Invalidate(serverID int64) {
	k.mu.Lock()
	delete(k.keys, serverID)
	k.generations[serverID]++
	k.mu.Unlock()
	k.lookups.Forget(lookupKey(serverID))
}

func lookupKey(serverID int64) string {
	return strconv.FormatInt(serverID, 10)
}

func NewKeyCache(store KeyStore, metrics *MetricsCollector) KeyCache {
	return &keyCache{
		store:       store,
		keys:        make(map[int64]string),
		generations: make(map[int64]uint64),
		metrics:     metrics,
	}
}
