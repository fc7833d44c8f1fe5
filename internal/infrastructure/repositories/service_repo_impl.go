package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/infrastructure/models"
)

// ServiceCategoryRepository implements category data operations
type ServiceCategoryRepository struct {
	db *gorm.DB
}

// NewServiceCategoryRepository creates a new category repository
func NewServiceCategoryRepository(db *gorm.DB) *ServiceCategoryRepository {
	return &ServiceCategoryRepository{db: db}
}

// Create creates a category
func (r *ServiceCategoryRepository) Create(ctx context.Context, category *entities.ServiceCategory) error {
	m := &models.ServiceCategory{
		ID:       category.ID,
		Name:     category.Name,
		IsActive: category.IsActive,
	}
	if category.Description.Valid {
		v := category.Description.String
		m.Description = &v
	}
	if category.Icon.Valid {
		v := category.Icon.String
		m.Icon = &v
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	category.ID = m.ID
	return nil
}

// GetByID gets a category by ID
func (r *ServiceCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceCategory, error) {
	var m models.ServiceCategory
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return categoryToEntity(&m), nil
}

// ListActive lists active categories
func (r *ServiceCategoryRepository) ListActive(ctx context.Context) ([]*entities.ServiceCategory, error) {
	var ms []models.ServiceCategory
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	categories := make([]*entities.ServiceCategory, 0, len(ms))
	for i := range ms {
		categories = append(categories, categoryToEntity(&ms[i]))
	}
	return categories, nil
}

func categoryToEntity(m *models.ServiceCategory) *entities.ServiceCategory {
	e := &entities.ServiceCategory{
		ID:       m.ID,
		Name:     m.Name,
		IsActive: m.IsActive,
	}
	if m.Description != nil {
		e.Description = null.StringFrom(*m.Description)
	}
	if m.Icon != nil {
		e.Icon = null.StringFrom(*m.Icon)
	}
	return e
}

// ServiceRepository implements catalog service data operations
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create creates a service
func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	m := serviceToModel(service)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	service.ID = m.ID
	return nil
}

// GetByID gets a service by ID with provider and category joined
func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	var m models.Service
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Provider").Preload("Category").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	e := serviceToEntity(&m)
	e.Provider = providerToEntity(&m.Provider)
	e.Category = categoryToEntity(&m.Category)
	return e, nil
}

// ListAvailable lists available services with optional search and
// category filter, paginated
func (r *ServiceRepository) ListAvailable(ctx context.Context, filter entities.ServiceFilter, limit, offset int) ([]*entities.Service, int, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Model(&models.Service{}).Where("services.is_available = ?", true)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Joins("JOIN service_provider_profiles ON service_provider_profiles.id = services.provider_id").
			Where("services.name LIKE ? OR services.description LIKE ? OR service_provider_profiles.business_name LIKE ?", like, like, like)
	}
	if filter.CategoryID != nil {
		q = q.Where("services.category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Service
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Preload("Category").Order("services.created_at ASC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	services := make([]*entities.Service, 0, len(ms))
	for i := range ms {
		e := serviceToEntity(&ms[i])
		e.Category = categoryToEntity(&ms[i].Category)
		services = append(services, e)
	}
	return services, int(total), nil
}

// ListByProvider lists all of a provider's services
func (r *ServiceRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error) {
	return r.listByProvider(ctx, providerID, false)
}

// ListAvailableByProvider lists only the available ones
func (r *ServiceRepository) ListAvailableByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error) {
	return r.listByProvider(ctx, providerID, true)
}

func (r *ServiceRepository) listByProvider(ctx context.Context, providerID uuid.UUID, availableOnly bool) ([]*entities.Service, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Where("provider_id = ?", providerID)
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	var ms []models.Service
	if err := q.Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	services := make([]*entities.Service, 0, len(ms))
	for i := range ms {
		services = append(services, serviceToEntity(&ms[i]))
	}
	return services, nil
}

// Update persists mutable service fields
func (r *ServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	m := serviceToModel(service)
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Service{}).Where("id = ?", service.ID).Updates(map[string]interface{}{
		"name":         m.Name,
		"description":  m.Description,
		"base_price":   m.BasePrice,
		"is_available": m.IsAvailable,
	}).Error
}

// Delete removes a service
func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func serviceToModel(e *entities.Service) *models.Service {
	m := &models.Service{
		ID:                e.ID,
		ProviderID:        e.ProviderID,
		CategoryID:        e.CategoryID,
		Name:              e.Name,
		BasePrice:         e.BasePrice,
		EstimatedDuration: int64(e.EstimatedDuration),
		IsAvailable:       e.IsAvailable,
	}
	if e.Description.Valid {
		v := e.Description.String
		m.Description = &v
	}
	return m
}

func serviceToEntity(m *models.Service) *entities.Service {
	e := &entities.Service{
		ID:                m.ID,
		ProviderID:        m.ProviderID,
		CategoryID:        m.CategoryID,
		Name:              m.Name,
		BasePrice:         m.BasePrice,
		EstimatedDuration: time.Duration(m.EstimatedDuration),
		IsAvailable:       m.IsAvailable,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Description != nil {
		e.Description = null.StringFrom(*m.Description)
	}
	return e
}
