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

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a review. The unique index on request_id enforces
// one review per request.
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	m := reviewToModel(review)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	review.ID = m.ID
	review.CreatedAt = m.CreatedAt
	review.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByRequestID gets the review for a request
func (r *ReviewRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*entities.Review, error) {
	var m models.Review
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("request_id = ?", requestID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// ListApprovedByProvider lists a provider's visible reviews newest
// first, paginated
func (r *ReviewRepository) ListApprovedByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entities.Review, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	err := db.WithContext(ctx).Model(&models.Review{}).
		Where("provider_id = ? AND is_approved = ?", providerID, true).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q := db.WithContext(ctx).
		Where("provider_id = ? AND is_approved = ?", providerID, true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var ms []models.Review
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	reviews := make([]*entities.Review, 0, len(ms))
	for i := range ms {
		reviews = append(reviews, reviewToEntity(&ms[i]))
	}
	return reviews, int(total), nil
}

func reviewToModel(e *entities.Review) *models.Review {
	m := &models.Review{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		ProviderID: e.ProviderID,
		RequestID:  e.RequestID,
		Rating:     e.Rating,
		IsFeatured: e.IsFeatured,
		IsApproved: e.IsApproved,
	}
	if e.Comment.Valid {
		v := e.Comment.String
		m.Comment = &v
	}
	if e.QualityRating.Valid {
		v := e.QualityRating.Int
		m.QualityRating = &v
	}
	if e.TimelinessRating.Valid {
		v := e.TimelinessRating.Int
		m.TimelinessRating = &v
	}
	if e.ProfessionalismRating.Valid {
		v := e.ProfessionalismRating.Int
		m.ProfessionalismRating = &v
	}
	if e.ValueRating.Valid {
		v := e.ValueRating.Int
		m.ValueRating = &v
	}
	return m
}

func reviewToEntity(m *models.Review) *entities.Review {
	e := &entities.Review{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProviderID: m.ProviderID,
		RequestID:  m.RequestID,
		Rating:     m.Rating,
		IsFeatured: m.IsFeatured,
		IsApproved: m.IsApproved,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Comment != nil {
		e.Comment = null.StringFrom(*m.Comment)
	}
	if m.QualityRating != nil {
		e.QualityRating = null.IntFrom(*m.QualityRating)
	}
	if m.TimelinessRating != nil {
		e.TimelinessRating = null.IntFrom(*m.TimelinessRating)
	}
	if m.ProfessionalismRating != nil {
		e.ProfessionalismRating = null.IntFrom(*m.ProfessionalismRating)
	}
	if m.ValueRating != nil {
		e.ValueRating = null.IntFrom(*m.ValueRating)
	}
	return e
}
