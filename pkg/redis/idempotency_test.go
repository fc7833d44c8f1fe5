package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *IdempotencyStore {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis not available in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))
	return NewIdempotencyStore(time.Minute)
}

func TestIdempotencyStore_ClaimOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	claimed, err := store.Claim(ctx, "key-1")
	assert.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = store.Claim(ctx, "key-1")
	assert.NoError(t, err)
	assert.False(t, claimed)
}

func TestIdempotencyStore_ResultLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	claimed, err := store.Claim(ctx, "key-2")
	assert.NoError(t, err)
	assert.True(t, claimed)

	// still in flight: no result yet
	result, err := store.GetResult(ctx, "key-2")
	assert.NoError(t, err)
	assert.Empty(t, result)

	assert.NoError(t, store.StoreResult(ctx, "key-2", []byte(`{"id":"abc"}`)))

	result, err = store.GetResult(ctx, "key-2")
	assert.NoError(t, err)
	assert.Equal(t, `{"id":"abc"}`, result)
}

func TestIdempotencyStore_ReleaseAllowsRetry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	claimed, err := store.Claim(ctx, "key-3")
	assert.NoError(t, err)
	assert.True(t, claimed)

	assert.NoError(t, store.Release(ctx, "key-3"))

	claimed, err = store.Claim(ctx, "key-3")
	assert.NoError(t, err)
	assert.True(t, claimed)
}

func TestIdempotencyStore_ErrorPropagation(t *testing.T) {
	origSetNX := setNXValue
	origGet := getValue
	origSet := setValue
	t.Cleanup(func() {
		setNXValue = origSetNX
		getValue = origGet
		setValue = origSet
	})

	setNXValue = func(context.Context, string, interface{}, time.Duration) (bool, error) {
		return false, errors.New("redis down")
	}
	getValue = func(context.Context, string) (string, error) {
		return "", errors.New("redis down")
	}
	setValue = func(context.Context, string, interface{}, time.Duration) error {
		return errors.New("redis down")
	}

	store := NewIdempotencyStore(time.Minute)
	ctx := context.Background()

	_, err := store.Claim(ctx, "k")
	assert.Error(t, err)
	_, err = store.GetResult(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, store.StoreResult(ctx, "k", []byte("x")))
}
