package repositories

import (
	"context"

	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
)

// VehicleRepository defines vehicle data operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entities.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Vehicle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*entities.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.Vehicle, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	Update(ctx context.Context, vehicle *entities.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}
