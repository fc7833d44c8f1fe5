package redis

import (
	"context"
	"time"
)

const idempotencyPrefix = "idem:"

// IdempotencyStore remembers request keys so retried mutations are
// served the first outcome instead of running twice.
type IdempotencyStore struct {
	ttl time.Duration
}

var (
	setNXValue = SetNX
	getValue   = Get
	setValue   = Set
)

// NewIdempotencyStore creates a store whose keys expire after ttl
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{ttl: ttl}
}

// Claim reserves the key for the calling request. It reports false when
// another request already holds it.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (bool, error) {
	return setNXValue(ctx, idempotencyPrefix+key, "pending", s.ttl)
}

// StoreResult records the response body served for the key so replays
// can return it verbatim.
func (s *IdempotencyStore) StoreResult(ctx context.Context, key string, body []byte) error {
	return setValue(ctx, idempotencyPrefix+key, string(body), s.ttl)
}

// GetResult returns the recorded response for the key. An empty string
// means the first request is still in flight.
func (s *IdempotencyStore) GetResult(ctx context.Context, key string) (string, error) {
	value, err := getValue(ctx, idempotencyPrefix+key)
	if err != nil {
		return "", err
	}
	if value == "pending" {
		return "", nil
	}
	return value, nil
}

// Release frees the key so the client may retry after a failure.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return Del(ctx, idempotencyPrefix+key)
}
