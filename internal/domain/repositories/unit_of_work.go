package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations. Every
// mutating usecase wraps its reads and writes in Do so a transition and
// its audit append commit or roll back together.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
