package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/domain/repositories"
	"servicehub.backend/pkg/utils"
)

// VehicleUsecase handles customer vehicle management
type VehicleUsecase struct {
	vehicleRepo  repositories.VehicleRepository
	customerRepo repositories.CustomerRepository
}

// NewVehicleUsecase creates a new vehicle usecase
func NewVehicleUsecase(
	vehicleRepo repositories.VehicleRepository,
	customerRepo repositories.CustomerRepository,
) *VehicleUsecase {
	return &VehicleUsecase{
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
	}
}

// AddVehicle registers a vehicle under the caller's customer profile.
// License plates are unique system-wide.
func (u *VehicleUsecase) AddVehicle(ctx context.Context, userID uuid.UUID, input *entities.AddVehicleInput) (*entities.Vehicle, error) {
	customer, err := u.resolveCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := u.vehicleRepo.GetByLicensePlate(ctx, input.LicensePlate); err == nil {
		return nil, domainerrors.AlreadyExists("license plate already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	vehicle := &entities.Vehicle{
		ID:           utils.GenerateUUIDv7(),
		CustomerID:   customer.ID,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		VehicleType:  input.VehicleType,
		LicensePlate: input.LicensePlate,
		IsPrimary:    input.IsPrimary,
	}
	if input.Color != "" {
		vehicle.Color = null.StringFrom(input.Color)
	}
	if err := u.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ListVehicles lists the caller's vehicles
func (u *VehicleUsecase) ListVehicles(ctx context.Context, userID uuid.UUID) ([]*entities.Vehicle, error) {
	customer, err := u.resolveCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.vehicleRepo.ListByCustomer(ctx, customer.ID)
}

// RemoveVehicle deletes a vehicle the caller owns
func (u *VehicleUsecase) RemoveVehicle(ctx context.Context, userID, vehicleID uuid.UUID) error {
	customer, err := u.resolveCustomer(ctx, userID)
	if err != nil {
		return err
	}
	vehicle, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.CustomerID != customer.ID {
		return domainerrors.AccessDenied("vehicle belongs to another customer")
	}
	return u.vehicleRepo.Delete(ctx, vehicleID)
}

func (u *VehicleUsecase) resolveCustomer(ctx context.Context, userID uuid.UUID) (*entities.CustomerProfile, error) {
	customer, err := u.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a customer")
		}
		return nil, err
	}
	return customer, nil
}
