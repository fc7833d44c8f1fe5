package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/usecases"
)

type reviewMocks struct {
	reviewRepo   *MockReviewRepository
	requestRepo  *MockServiceRequestRepository
	customerRepo *MockCustomerRepository
	providerRepo *MockProviderRepository
	uow          *MockUnitOfWork
}

func newReviewUsecase() (*usecases.ReviewUsecase, *reviewMocks) {
	m := &reviewMocks{
		reviewRepo:   new(MockReviewRepository),
		requestRepo:  new(MockServiceRequestRepository),
		customerRepo: new(MockCustomerRepository),
		providerRepo: new(MockProviderRepository),
		uow:          new(MockUnitOfWork),
	}
	uc := usecases.NewReviewUsecase(
		m.reviewRepo, m.requestRepo, m.customerRepo, m.providerRepo, m.uow)
	return uc, m
}

func TestCreateReview_UpdatesProviderAggregate(t *testing.T) {
	uc, m := newReviewUsecase()

	userID := uuid.New()
	customer := &entities.CustomerProfile{ID: uuid.New(), UserID: userID}
	providerID := uuid.New()
	requestID := uuid.New()
	completed := &entities.ServiceRequest{
		ID: requestID, CustomerID: customer.ID, ProviderID: &providerID,
		Status: entities.RequestStatusCompleted,
	}

	m.customerRepo.On("GetByUserID", mock.Anything, userID).Return(customer, nil)
	m.requestRepo.On("GetByID", mock.Anything, requestID).Return(completed, nil)
	m.reviewRepo.On("GetByRequestID", mock.Anything, requestID).Return(nil, domainerrors.ErrNotFound)
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	m.reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Review) bool {
		return r.Rating == 4 && r.ProviderID == providerID && r.IsApproved &&
			r.QualityRating.Valid && r.QualityRating.Int == 5 && !r.ValueRating.Valid
	})).Return(nil)
	m.providerRepo.On("ApplyReview", mock.Anything, providerID, 4.0).Return(nil)

	quality := 5
	review, err := uc.CreateReview(context.Background(), userID, &entities.CreateReviewInput{
		RequestID:     requestID,
		Rating:        4,
		Comment:       "quick and honest about the parts",
		QualityRating: &quality,
	})

	require.NoError(t, err)
	require.Equal(t, customer.ID, review.CustomerID)
	require.True(t, review.Comment.Valid)
	m.reviewRepo.AssertExpectations(t)
	m.providerRepo.AssertExpectations(t)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	uc, m := newReviewUsecase()

	userID := uuid.New()
	customer := &entities.CustomerProfile{ID: uuid.New(), UserID: userID}
	m.customerRepo.On("GetByUserID", mock.Anything, userID).Return(customer, nil)

	_, err := uc.CreateReview(context.Background(), userID, &entities.CreateReviewInput{
		RequestID: uuid.New(), Rating: 6,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	bad := 0
	_, err = uc.CreateReview(context.Background(), userID, &entities.CreateReviewInput{
		RequestID: uuid.New(), Rating: 3, TimelinessRating: &bad,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCreateReview_RequestNotCompleted(t *testing.T) {
	uc, m := newReviewUsecase()

	userID := uuid.New()
	customer := &entities.CustomerProfile{ID: uuid.New(), UserID: userID}
	providerID := uuid.New()
	requestID := uuid.New()
	inProgress := &entities.ServiceRequest{
		ID: requestID, CustomerID: customer.ID, ProviderID: &providerID,
		Status: entities.RequestStatusInProgress,
	}

	m.customerRepo.On("GetByUserID", mock.Anything, userID).Return(customer, nil)
	m.requestRepo.On("GetByID", mock.Anything, requestID).Return(inProgress, nil)

	_, err := uc.CreateReview(context.Background(), userID, &entities.CreateReviewInput{
		RequestID: requestID, Rating: 5,
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	m.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_DuplicateRejected(t *testing.T) {
	uc, m := newReviewUsecase()

	userID := uuid.New()
	customer := &entities.CustomerProfile{ID: uuid.New(), UserID: userID}
	providerID := uuid.New()
	requestID := uuid.New()
	completed := &entities.ServiceRequest{
		ID: requestID, CustomerID: customer.ID, ProviderID: &providerID,
		Status: entities.RequestStatusCompleted,
	}

	m.customerRepo.On("GetByUserID", mock.Anything, userID).Return(customer, nil)
	m.requestRepo.On("GetByID", mock.Anything, requestID).Return(completed, nil)
	m.reviewRepo.On("GetByRequestID", mock.Anything, requestID).
		Return(&entities.Review{ID: uuid.New(), RequestID: requestID}, nil)

	_, err := uc.CreateReview(context.Background(), userID, &entities.CreateReviewInput{
		RequestID: requestID, Rating: 5,
	})

	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	m.providerRepo.AssertNotCalled(t, "ApplyReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReview_NotRequestOwner(t *testing.T) {
	uc, m := newReviewUsecase()

	userID := uuid.New()
	customer := &entities.CustomerProfile{ID: uuid.New(), UserID: userID}
	providerID := uuid.New()
	requestID := uuid.New()
	someoneElses := &entities.ServiceRequest{
		ID: requestID, CustomerID: uuid.New(), ProviderID: &providerID,
		Status: entities.RequestStatusCompleted,
	}

	m.customerRepo.On("GetByUserID", mock.Anything, userID).Return(customer, nil)
	m.requestRepo.On("GetByID", mock.Anything, requestID).Return(someoneElses, nil)

	_, err := uc.CreateReview(context.Background(), userID, &entities.CreateReviewInput{
		RequestID: requestID, Rating: 5,
	})

	require.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestListProviderReviews_UnknownProvider(t *testing.T) {
	uc, m := newReviewUsecase()

	providerID := uuid.New()
	m.providerRepo.On("GetByID", mock.Anything, providerID).Return(nil, domainerrors.ErrNotFound)

	_, _, err := uc.ListProviderReviews(context.Background(), providerID, 1, 10)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
