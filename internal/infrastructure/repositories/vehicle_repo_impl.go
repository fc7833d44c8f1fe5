package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/infrastructure/models"
)

// VehicleRepository implements vehicle data operations
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create creates a vehicle
func (r *VehicleRepository) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	m := vehicleToModel(vehicle)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	vehicle.ID = m.ID
	return nil
}

// GetByID gets a vehicle by ID
func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Vehicle, error) {
	var m models.Vehicle
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return vehicleToEntity(&m), nil
}

// GetByLicensePlate gets a vehicle by its unique plate
func (r *VehicleRepository) GetByLicensePlate(ctx context.Context, plate string) (*entities.Vehicle, error) {
	var m models.Vehicle
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("license_plate = ?", plate).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return vehicleToEntity(&m), nil
}

// ListByCustomer lists a customer's vehicles
func (r *VehicleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.Vehicle, error) {
	var ms []models.Vehicle
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("customer_id = ?", customerID).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	vehicles := make([]*entities.Vehicle, 0, len(ms))
	for i := range ms {
		vehicles = append(vehicles, vehicleToEntity(&ms[i]))
	}
	return vehicles, nil
}

// CountByCustomer counts a customer's vehicles
func (r *VehicleRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Vehicle{}).Where("customer_id = ?", customerID).Count(&total).Error
	return total, err
}

// Update persists mutable vehicle fields
func (r *VehicleRepository) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	m := vehicleToModel(vehicle)
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).Updates(map[string]interface{}{
		"make":          m.Make,
		"model":         m.Model,
		"year":          m.Year,
		"vehicle_type":  m.VehicleType,
		"license_plate": m.LicensePlate,
		"color":         m.Color,
		"is_primary":    m.IsPrimary,
	}).Error
}

// Delete removes a vehicle
func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Vehicle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func vehicleToModel(e *entities.Vehicle) *models.Vehicle {
	m := &models.Vehicle{
		ID:           e.ID,
		CustomerID:   e.CustomerID,
		Make:         e.Make,
		Model:        e.Model,
		Year:         e.Year,
		VehicleType:  string(e.VehicleType),
		LicensePlate: e.LicensePlate,
		IsPrimary:    e.IsPrimary,
	}
	if e.Color.Valid {
		v := e.Color.String
		m.Color = &v
	}
	return m
}

func vehicleToEntity(m *models.Vehicle) *entities.Vehicle {
	e := &entities.Vehicle{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		Make:         m.Make,
		Model:        m.Model,
		Year:         m.Year,
		VehicleType:  entities.VehicleType(m.VehicleType),
		LicensePlate: m.LicensePlate,
		IsPrimary:    m.IsPrimary,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Color != nil {
		e.Color = null.StringFrom(*m.Color)
	}
	return e
}
