package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 returns a time-ordered UUID. Entity IDs use v7 so
// index order roughly follows insertion order; if the v7 source ever
// fails it falls back to a random v4.
func GenerateUUIDv7() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}
	return uuid.New()
}
