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

// ReviewUsecase handles post-completion reviews and the provider
// rating aggregate they feed.
type ReviewUsecase struct {
	reviewRepo   repositories.ReviewRepository
	requestRepo  repositories.ServiceRequestRepository
	customerRepo repositories.CustomerRepository
	providerRepo repositories.ProviderRepository
	uow          repositories.UnitOfWork
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	reviewRepo repositories.ReviewRepository,
	requestRepo repositories.ServiceRequestRepository,
	customerRepo repositories.CustomerRepository,
	providerRepo repositories.ProviderRepository,
	uow repositories.UnitOfWork,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:   reviewRepo,
		requestRepo:  requestRepo,
		customerRepo: customerRepo,
		providerRepo: providerRepo,
		uow:          uow,
	}
}

// CreateReview files the customer's review of a completed request and
// folds the overall rating into the provider's aggregate in the same
// transaction. One review per request.
func (u *ReviewUsecase) CreateReview(ctx context.Context, userID uuid.UUID, input *entities.CreateReviewInput) (*entities.Review, error) {
	customer, err := u.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a customer")
		}
		return nil, err
	}

	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	for _, aspect := range []*int{input.QualityRating, input.TimelinessRating, input.ProfessionalismRating, input.ValueRating} {
		if aspect == nil {
			continue
		}
		if err := validateRating(*aspect); err != nil {
			return nil, err
		}
	}

	request, err := u.requestRepo.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.CustomerID != customer.ID {
		return nil, domainerrors.AccessDenied("request belongs to another customer")
	}
	if request.Status != entities.RequestStatusCompleted {
		return nil, domainerrors.InvalidTransition("only completed requests can be reviewed")
	}
	if request.ProviderID == nil {
		return nil, domainerrors.InvalidTransition("request has no assigned provider")
	}

	if _, err := u.reviewRepo.GetByRequestID(ctx, input.RequestID); err == nil {
		return nil, domainerrors.AlreadyExists("request is already reviewed")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	review := &entities.Review{
		ID:         utils.GenerateUUIDv7(),
		CustomerID: customer.ID,
		ProviderID: *request.ProviderID,
		RequestID:  request.ID,
		Rating:     input.Rating,
		IsApproved: true,
	}
	if input.Comment != "" {
		review.Comment = null.StringFrom(input.Comment)
	}
	if input.QualityRating != nil {
		review.QualityRating = null.IntFrom(*input.QualityRating)
	}
	if input.TimelinessRating != nil {
		review.TimelinessRating = null.IntFrom(*input.TimelinessRating)
	}
	if input.ProfessionalismRating != nil {
		review.ProfessionalismRating = null.IntFrom(*input.ProfessionalismRating)
	}
	if input.ValueRating != nil {
		review.ValueRating = null.IntFrom(*input.ValueRating)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reviewRepo.Create(txCtx, review); err != nil {
			return err
		}
		return u.providerRepo.ApplyReview(txCtx, review.ProviderID, float64(review.Rating))
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListProviderReviews lists a provider's approved reviews, newest first
func (u *ReviewUsecase) ListProviderReviews(ctx context.Context, providerID uuid.UUID, page, limit int) ([]*entities.Review, int, error) {
	if _, err := u.providerRepo.GetByID(ctx, providerID); err != nil {
		return nil, 0, err
	}
	params := utils.GetPaginationParams(page, limit)
	return u.reviewRepo.ListApprovedByProvider(ctx, providerID, params.Limit, params.CalculateOffset())
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return domainerrors.BadRequest("ratings run from 1 to 5")
	}
	return nil
}
