package idempotency

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStore_ReserveCompleteReplay(t *testing.T) {
	rdb := newFakeRedis()
	store := NewStore(rdb, time.Hour)
	ctx := context.Background()

	existing, reserved, err := store.Reserve(ctx, "key-1", "hash-a")
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Nil(t, existing)
	assert.Equal(t, time.Hour, rdb.ttls["idempotency:key-1"])

	existing, reserved, err = store.Reserve(ctx, "key-1", "hash-a")
	require.NoError(t, err)
	assert.False(t, reserved)
	require.NotNil(t, existing)
	assert.False(t, existing.Completed, "first request still in flight")

	require.NoError(t, store.Complete(ctx, "key-1", "hash-a", 201, []byte(`{"url":"https://pay"}`)))

	existing, reserved, err = store.Reserve(ctx, "key-1", "hash-a")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.True(t, existing.Completed)
	assert.Equal(t, 201, existing.Status)
	assert.JSONEq(t, `{"url":"https://pay"}`, string(existing.Body))
}

func TestStore_Release(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Minute)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "key-2", "hash")
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "key-2"))

	rec, err := store.Get(ctx, "key-2")
	require.NoError(t, err)
	assert.Nil(t, rec)

	_, reserved, err := store.Reserve(ctx, "key-2", "hash")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestStore_RedisError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	store := NewStore(rdb, time.Minute)

	_, _, err := store.Reserve(context.Background(), "key-3", "hash")
	assert.ErrorIs(t, err, ErrStore)
}
