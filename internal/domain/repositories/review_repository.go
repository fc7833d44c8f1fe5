package repositories

import (
	"context"

	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
)

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	GetByRequestID(ctx context.Context, requestID uuid.UUID) (*entities.Review, error)
	ListApprovedByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entities.Review, int, error)
}
