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

// ProviderRepository implements service provider data operations
type ProviderRepository struct {
	db *gorm.DB
}

// NewProviderRepository creates a new provider repository
func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// Create creates a provider profile
func (r *ProviderRepository) Create(ctx context.Context, provider *entities.ServiceProviderProfile) error {
	m := providerToModel(provider)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	provider.ID = m.ID
	return nil
}

// GetByID gets a provider by ID
func (r *ProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceProviderProfile, error) {
	var m models.ServiceProviderProfile
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return providerToEntity(&m), nil
}

// GetByUserID gets a provider by owning user
func (r *ProviderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ServiceProviderProfile, error) {
	var m models.ServiceProviderProfile
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return providerToEntity(&m), nil
}

// GetByLicense gets a provider by business license
func (r *ProviderRepository) GetByLicense(ctx context.Context, license string) (*entities.ServiceProviderProfile, error) {
	var m models.ServiceProviderProfile
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("business_license = ?", license).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return providerToEntity(&m), nil
}

// ListWithLocation returns providers whose user has both coordinates
// set, ordered by insertion so equal-distance ranking stays stable.
func (r *ProviderRepository) ListWithLocation(ctx context.Context) ([]*entities.ServiceProviderProfile, error) {
	var ms []models.ServiceProviderProfile
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Joins("JOIN users ON users.id = service_provider_profiles.user_id").
		Where("users.latitude IS NOT NULL AND users.longitude IS NOT NULL").
		Preload("User").
		Order("service_provider_profiles.created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	providers := make([]*entities.ServiceProviderProfile, 0, len(ms))
	for i := range ms {
		e := providerToEntity(&ms[i])
		e.User = userToEntity(&ms[i].User)
		providers = append(providers, e)
	}
	return providers, nil
}

// SetApproval flips the admin approval flag
func (r *ProviderRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.ServiceProviderProfile{}).
		Where("id = ?", id).Update("is_approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetActive soft-disables or re-enables a provider
func (r *ProviderRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.ServiceProviderProfile{}).
		Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementDues bumps the dues counters by one overdue commission
func (r *ProviderRepository) IncrementDues(ctx context.Context, id uuid.UUID, amount float64) error {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.ServiceProviderProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"unpaid_dues_count":   gorm.Expr("unpaid_dues_count + 1"),
			"total_unpaid_amount": gorm.Expr("total_unpaid_amount + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DecrementDues reverses one overdue commission after settlement
func (r *ProviderRepository) DecrementDues(ctx context.Context, id uuid.UUID, amount float64) error {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.ServiceProviderProfile{}).
		Where("id = ? AND unpaid_dues_count > 0", id).
		Updates(map[string]interface{}{
			"unpaid_dues_count":   gorm.Expr("unpaid_dues_count - 1"),
			"total_unpaid_amount": gorm.Expr("total_unpaid_amount - ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ApplyReview folds one rating into the running aggregate
func (r *ProviderRepository) ApplyReview(ctx context.Context, id uuid.UUID, rating float64) error {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.ServiceProviderProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":        gorm.Expr("(rating * total_reviews + ?) / (total_reviews + 1)", rating),
			"total_reviews": gorm.Expr("total_reviews + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func providerToModel(e *entities.ServiceProviderProfile) *models.ServiceProviderProfile {
	m := &models.ServiceProviderProfile{
		ID:                e.ID,
		UserID:            e.UserID,
		BusinessName:      e.BusinessName,
		BusinessLicense:   e.BusinessLicense,
		ProviderType:      string(e.ProviderType),
		IsApproved:        e.IsApproved,
		IsActive:          e.IsActive,
		CommissionRate:    e.CommissionRate,
		UnpaidDuesCount:   e.UnpaidDuesCount,
		TotalUnpaidAmount: e.TotalUnpaidAmount,
		Rating:            e.Rating,
		TotalReviews:      e.TotalReviews,
	}
	if e.Description.Valid {
		v := e.Description.String
		m.Description = &v
	}
	if e.OperatingHours.Valid {
		v := e.OperatingHours.String
		m.OperatingHours = &v
	}
	return m
}

func providerToEntity(m *models.ServiceProviderProfile) *entities.ServiceProviderProfile {
	e := &entities.ServiceProviderProfile{
		ID:                m.ID,
		UserID:            m.UserID,
		BusinessName:      m.BusinessName,
		BusinessLicense:   m.BusinessLicense,
		ProviderType:      entities.ProviderType(m.ProviderType),
		IsApproved:        m.IsApproved,
		IsActive:          m.IsActive,
		CommissionRate:    m.CommissionRate,
		UnpaidDuesCount:   m.UnpaidDuesCount,
		TotalUnpaidAmount: m.TotalUnpaidAmount,
		Rating:            m.Rating,
		TotalReviews:      m.TotalReviews,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Description != nil {
		e.Description = null.StringFrom(*m.Description)
	}
	if m.OperatingHours != nil {
		e.OperatingHours = null.StringFrom(*m.OperatingHours)
	}
	return e
}
