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

// UserRepository implements user account data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Update persists mutable user fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"full_name":    m.FullName,
		"phone_number": m.PhoneNumber,
		"address":      m.Address,
		"latitude":     m.Latitude,
		"longitude":    m.Longitude,
		"is_verified":  m.IsVerified,
	}).Error
}

func userToModel(e *entities.User) *models.User {
	m := &models.User{
		ID:           e.ID,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		FullName:     e.FullName,
		Role:         string(e.Role),
		IsVerified:   e.IsVerified,
	}
	if e.PhoneNumber.Valid {
		v := e.PhoneNumber.String
		m.PhoneNumber = &v
	}
	if e.Address.Valid {
		v := e.Address.String
		m.Address = &v
	}
	if e.Latitude.Valid {
		v := e.Latitude.Float64
		m.Latitude = &v
	}
	if e.Longitude.Valid {
		v := e.Longitude.Float64
		m.Longitude = &v
	}
	return m
}

func userToEntity(m *models.User) *entities.User {
	e := &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Role:         entities.UserRole(m.Role),
		IsVerified:   m.IsVerified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.PhoneNumber != nil {
		e.PhoneNumber = null.StringFrom(*m.PhoneNumber)
	}
	if m.Address != nil {
		e.Address = null.StringFrom(*m.Address)
	}
	if m.Latitude != nil {
		e.Latitude = null.Float64From(*m.Latitude)
	}
	if m.Longitude != nil {
		e.Longitude = null.Float64From(*m.Longitude)
	}
	return e
}

// CustomerRepository implements customer profile data operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a customer profile
func (r *CustomerRepository) Create(ctx context.Context, profile *entities.CustomerProfile) error {
	m := &models.CustomerProfile{
		ID:                     profile.ID,
		UserID:                 profile.UserID,
		PreferredPaymentMethod: string(profile.PreferredPaymentMethod),
	}
	if profile.EmergencyContact.Valid {
		v := profile.EmergencyContact.String
		m.EmergencyContact = &v
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.ID = m.ID
	return nil
}

// GetByID gets a customer profile by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CustomerProfile, error) {
	var m models.CustomerProfile
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return customerToEntity(&m), nil
}

// GetByUserID gets a customer profile by owning user
func (r *CustomerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CustomerProfile, error) {
	var m models.CustomerProfile
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return customerToEntity(&m), nil
}

func customerToEntity(m *models.CustomerProfile) *entities.CustomerProfile {
	e := &entities.CustomerProfile{
		ID:                     m.ID,
		UserID:                 m.UserID,
		PreferredPaymentMethod: entities.PaymentMethod(m.PreferredPaymentMethod),
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
	if m.EmergencyContact != nil {
		e.EmergencyContact = null.StringFrom(*m.EmergencyContact)
	}
	return e
}
