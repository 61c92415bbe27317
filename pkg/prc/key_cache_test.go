package prc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKeyCache_Resolve(t *testing.T) {
	serverID := int64(1234)
	storeErr := errors.New("mongo down")

	testCases := []struct {
		name        string
		mock        func(store *MockKeyStore)
		calls       int
		expectedKey string
		expectedErr error
	}{
		{
			name: "Success, second resolve hits the cache",
			mock: func(store *MockKeyStore) {
				store.EXPECT().FindKey(gomock.Any(), serverID).Return("secret-key", nil).Times(1)
			},
			calls:       2,
			expectedKey: "secret-key",
		},
		{
			name: "Server not linked",
			mock: func(store *MockKeyStore) {
				store.EXPECT().FindKey(gomock.Any(), serverID).
					Return("", fmt.Errorf("serverKeyRepository.FindKey: %w", ErrServerLinkNotFound)).Times(2)
			},
			calls:       2,
			expectedErr: ErrServerLinkNotFound,
		},
		{
			name: "Store error is wrapped",
			mock: func(store *MockKeyStore) {
				store.EXPECT().FindKey(gomock.Any(), serverID).Return("", storeErr).Times(1)
			},
			calls:       1,
			expectedErr: storeErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockKeyStore(ctrl)
			tc.mock(store)
			cache := NewKeyCache(store, nil)

			for i := 0; i < tc.calls; i++ {
				key, err := cache.Resolve(context.Background(), serverID)
				if tc.expectedErr != nil {
					assert.ErrorIs(t, err, tc.expectedErr)
					assert.Empty(t, key)
				} else {
					require.NoError(t, err)
					assert.Equal(t, tc.expectedKey, key)
				}
			}
		})
	}
}

func TestKeyCache_ResolveLinkNotFoundIsUnwrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockKeyStore(ctrl)
	store.EXPECT().FindKey(gomock.Any(), int64(7)).Return("", fmt.Errorf("repo: %w", ErrServerLinkNotFound))

	_, err := NewKeyCache(store, nil).Resolve(context.Background(), 7)

	assert.Equal(t, ErrServerLinkNotFound, err)
	assert.Equal(t, "API Key not found", err.Error())
}

func TestKeyCache_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockKeyStore(ctrl)
	gomock.InOrder(
		store.EXPECT().FindKey(gomock.Any(), int64(1)).Return("old-key", nil),
		store.EXPECT().FindKey(gomock.Any(), int64(1)).Return("rotated-key", nil),
	)
	cache := NewKeyCache(store, nil)

	key, err := cache.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "old-key", key)

	key, err = cache.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "old-key", key)

	cache.Invalidate(1)
	key, err = cache.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "rotated-key", key)
}

type slowKeyStore struct {
	lookups atomic.Int32
	delay   time.Duration
}

func (s *slowKeyStore) FindKey(_ context.Context, serverID int64) (string, error) {
	s.lookups.Add(1)
	time.Sleep(s.delay)
	return fmt.Sprintf("key-%d", serverID), nil
}

func TestKeyCache_ConcurrentResolveSharesLookup(t *testing.T) {
	store := &slowKeyStore{delay: 50 * time.Millisecond}
	cache := NewKeyCache(store, nil)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key, err := cache.Resolve(context.Background(), 42)
			assert.NoError(t, err)
			results[i] = key
		}(i)
	}
	wg.Wait()

	for _, key := range results {
		assert.Equal(t, "key-42", key)
	}
	assert.LessOrEqual(t, store.lookups.Load(), int32(2))

	_, err := cache.Resolve(context.Background(), 42)
	require.NoError(t, err)
	assert.LessOrEqual(t, store.lookups.Load(), int32(2))
}

type blockingKeyStore struct {
	mu      sync.Mutex
	key     string
	entered chan struct{}
	release chan struct{}
	blocked atomic.Bool
}

func (s *blockingKeyStore) FindKey(_ context.Context, _ int64) (string, error) {
	s.mu.Lock()
	key := s.key
	s.mu.Unlock()
	if s.blocked.CompareAndSwap(false, true) {
		close(s.entered)
		<-s.release
	}
	return key, nil
}

func (s *blockingKeyStore) setKey(key string) {
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()
}

func TestKeyCache_InvalidateDuringLookup(t *testing.T) {
	store := &blockingKeyStore{
		key:     "old-key",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := NewKeyCache(store, nil)

	inFlight := make(chan string, 1)
	go func() {
		key, err := cache.Resolve(context.Background(), 1)
		assert.NoError(t, err)
		inFlight <- key
	}()

	<-store.entered
	store.setKey("rotated-key")
	cache.Invalidate(1)
	close(store.release)
	assert.Equal(t, "old-key", <-inFlight)

	key, err := cache.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "rotated-key", key)
}
