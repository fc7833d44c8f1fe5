package repositories

import (
	"context"

	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
)

// ServiceCategoryRepository defines category data operations
type ServiceCategoryRepository interface {
	Create(ctx context.Context, category *entities.ServiceCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceCategory, error)
	ListActive(ctx context.Context) ([]*entities.ServiceCategory, error)
}

// ServiceRepository defines catalog service data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	ListAvailable(ctx context.Context, filter entities.ServiceFilter, limit, offset int) ([]*entities.Service, int, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error)
	ListAvailableByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error)
	Update(ctx context.Context, service *entities.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}
