package repositories

import (
	"context"

	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
)

// UserRepository defines user account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

// CustomerRepository defines customer profile data operations
type CustomerRepository interface {
	Create(ctx context.Context, profile *entities.CustomerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CustomerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CustomerProfile, error)
}
