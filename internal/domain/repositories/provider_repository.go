package repositories

import (
	"context"

	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
)

// ProviderRepository defines service provider data operations
type ProviderRepository interface {
	Create(ctx context.Context, provider *entities.ServiceProviderProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceProviderProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ServiceProviderProfile, error)
	GetByLicense(ctx context.Context, license string) (*entities.ServiceProviderProfile, error)
	// ListWithLocation returns providers whose owning user has both
	// coordinates set, with the user joined in. Discovery filters the
	// result through the eligibility gate.
	ListWithLocation(ctx context.Context) ([]*entities.ServiceProviderProfile, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	// IncrementDues adds one overdue commission of the given amount to
	// the provider's dues counters. Called inside the same transaction
	// as the commission's own status flip.
	IncrementDues(ctx context.Context, id uuid.UUID, amount float64) error
	// DecrementDues reverses one overdue commission after it is paid.
	DecrementDues(ctx context.Context, id uuid.UUID, amount float64) error
	// ApplyReview folds one new rating into the provider's running
	// aggregate and bumps the review count.
	ApplyReview(ctx context.Context, id uuid.UUID, rating float64) error
}
