package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/domain/repositories"
	"servicehub.backend/pkg/metrics"
	"servicehub.backend/pkg/utils"
)

// RequestUsecase drives the service request lifecycle. Every successful
// transition writes the status row and exactly one audit row in the
// same transaction; denied or invalid attempts mutate nothing.
type RequestUsecase struct {
	requestRepo  repositories.ServiceRequestRepository
	serviceRepo  repositories.ServiceRepository
	vehicleRepo  repositories.VehicleRepository
	customerRepo repositories.CustomerRepository
	providerRepo repositories.ProviderRepository
	uow          repositories.UnitOfWork
}

// NewRequestUsecase creates a new request usecase
func NewRequestUsecase(
	requestRepo repositories.ServiceRequestRepository,
	serviceRepo repositories.ServiceRepository,
	vehicleRepo repositories.VehicleRepository,
	customerRepo repositories.CustomerRepository,
	providerRepo repositories.ProviderRepository,
	uow repositories.UnitOfWork,
) *RequestUsecase {
	return &RequestUsecase{
		requestRepo:  requestRepo,
		serviceRepo:  serviceRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		providerRepo: providerRepo,
		uow:          uow,
	}
}

// Create opens a new pending request for the calling customer. The
// service's base price seeds the estimated cost.
func (u *RequestUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateRequestInput) (*entities.ServiceRequest, error) {
	customer, err := u.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a customer")
		}
		return nil, err
	}

	vehicleCount, err := u.vehicleRepo.CountByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if vehicleCount == 0 {
		return nil, domainerrors.NoVehicle("register a vehicle before requesting service")
	}

	vehicle, err := u.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.CustomerID != customer.ID {
		return nil, domainerrors.AccessDenied("vehicle belongs to another customer")
	}

	service, err := u.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.IsAvailable {
		return nil, domainerrors.ServiceUnavailable("service is not currently offered")
	}

	priority := input.Priority
	if priority == "" {
		priority = entities.RequestPriorityMedium
	}
	if !priority.Valid() {
		return nil, domainerrors.BadRequest("unknown priority")
	}

	now := time.Now()
	request := &entities.ServiceRequest{
		ID:              utils.GenerateUUIDv7(),
		CustomerID:      customer.ID,
		ServiceID:       service.ID,
		VehicleID:       vehicle.ID,
		Description:     input.Description,
		Priority:        priority,
		Status:          entities.RequestStatusPending,
		PickupLatitude:  input.PickupLatitude,
		PickupLongitude: input.PickupLongitude,
		PickupAddress:   input.PickupAddress,
		RequestedAt:     now,
		EstimatedCost:   null.Float64From(service.BasePrice),
	}
	if input.ScheduledFor != nil {
		request.ScheduledFor = null.TimeFrom(*input.ScheduledFor)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.requestRepo.Create(txCtx, request); err != nil {
			return err
		}
		return u.appendAudit(txCtx, request.ID, entities.RequestStatusPending, "request created", entities.ActorCustomer)
	})
	if err != nil {
		return nil, err
	}

	metrics.RequestTransitions.WithLabelValues(string(entities.RequestStatusPending)).Inc()
	return request, nil
}

// Accept assigns the calling provider to a pending request. The
// eligibility gate is read inside the same transaction as the status
// compare-and-set, so a provider crossing the dues threshold cannot
// slip through, and two concurrent accepts resolve to one winner.
func (u *RequestUsecase) Accept(ctx context.Context, userID, requestID uuid.UUID) (*entities.ServiceRequest, error) {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		request, err := u.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != entities.RequestStatusPending {
			return domainerrors.InvalidTransition("request is no longer pending")
		}

		service, err := u.serviceRepo.GetByID(txCtx, request.ServiceID)
		if err != nil {
			return err
		}
		if service.ProviderID != provider.ID {
			return domainerrors.AccessDenied("request targets another provider's service")
		}

		// gate read inside the tx
		fresh, err := u.providerRepo.GetByID(txCtx, provider.ID)
		if err != nil {
			return err
		}
		if !fresh.EligibleForRequests() {
			return domainerrors.ProviderIneligible("provider is not eligible to accept requests")
		}

		acceptedAt := time.Now()
		if err := u.requestRepo.TransitionStatus(txCtx, requestID,
			entities.RequestStatusPending, entities.RequestStatusAccepted,
			&repositories.RequestPatch{ProviderID: &provider.ID, AcceptedAt: &acceptedAt}); err != nil {
			if errors.Is(err, domainerrors.ErrInvalidTransition) {
				return domainerrors.InvalidTransition("request was taken by another provider")
			}
			return err
		}
		return u.appendAudit(txCtx, requestID, entities.RequestStatusAccepted, "request accepted", entities.ActorProvider)
	})
	if err != nil {
		return nil, err
	}

	metrics.RequestTransitions.WithLabelValues(string(entities.RequestStatusAccepted)).Inc()
	return u.requestRepo.GetByID(ctx, requestID)
}

// Reject closes a pending request. Matching is by service ownership,
// not assignment: any provider whose service the request targets may
// turn it down while it is still pending.
func (u *RequestUsecase) Reject(ctx context.Context, userID, requestID uuid.UUID, reason string) error {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		request, err := u.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != entities.RequestStatusPending {
			return domainerrors.InvalidTransition("only pending requests can be rejected")
		}

		service, err := u.serviceRepo.GetByID(txCtx, request.ServiceID)
		if err != nil {
			return err
		}
		if service.ProviderID != provider.ID {
			return domainerrors.AccessDenied("request targets another provider's service")
		}

		patch := &repositories.RequestPatch{}
		if reason != "" {
			patch.CancellationReason = &reason
		}
		if err := u.requestRepo.TransitionStatus(txCtx, requestID,
			entities.RequestStatusPending, entities.RequestStatusRejected, patch); err != nil {
			return err
		}
		return u.appendAudit(txCtx, requestID, entities.RequestStatusRejected, reason, entities.ActorProvider)
	})
	if err != nil {
		return err
	}

	metrics.RequestTransitions.WithLabelValues(string(entities.RequestStatusRejected)).Inc()
	return nil
}

// Start moves an accepted request to in_progress. The assigned
// provider drives this normally; an admin may advance on its behalf.
func (u *RequestUsecase) Start(ctx context.Context, userID uuid.UUID, role entities.UserRole, requestID uuid.UUID) error {
	actor, providerID, err := u.resolveAdvanceActor(ctx, userID, role)
	if err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		request, err := u.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if actor != entities.ActorAdmin {
			if err := requireAssigned(request, providerID); err != nil {
				return err
			}
		}
		if request.Status != entities.RequestStatusAccepted {
			return domainerrors.InvalidTransition("request must be accepted before work starts")
		}

		startedAt := time.Now()
		if err := u.requestRepo.TransitionStatus(txCtx, requestID,
			entities.RequestStatusAccepted, entities.RequestStatusInProgress,
			&repositories.RequestPatch{StartedAt: &startedAt}); err != nil {
			return err
		}
		return u.appendAudit(txCtx, requestID, entities.RequestStatusInProgress, "work started", actor)
	})
	if err != nil {
		return err
	}

	metrics.RequestTransitions.WithLabelValues(string(entities.RequestStatusInProgress)).Inc()
	return nil
}

// Complete finishes an in-progress request. The final cost defaults to
// the estimate when the caller does not supply one. The assigned
// provider or an admin may complete.
func (u *RequestUsecase) Complete(ctx context.Context, userID uuid.UUID, role entities.UserRole, requestID uuid.UUID, finalCost *float64) error {
	actor, providerID, err := u.resolveAdvanceActor(ctx, userID, role)
	if err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		request, err := u.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if actor != entities.ActorAdmin {
			if err := requireAssigned(request, providerID); err != nil {
				return err
			}
		}
		if request.Status != entities.RequestStatusInProgress {
			return domainerrors.InvalidTransition("request is not in progress")
		}

		cost := finalCost
		if cost == nil && request.EstimatedCost.Valid {
			v := request.EstimatedCost.Float64
			cost = &v
		}
		if cost != nil && *cost < 0 {
			return domainerrors.BadRequest("final cost must not be negative")
		}

		completedAt := time.Now()
		if err := u.requestRepo.TransitionStatus(txCtx, requestID,
			entities.RequestStatusInProgress, entities.RequestStatusCompleted,
			&repositories.RequestPatch{CompletedAt: &completedAt, FinalCost: cost}); err != nil {
			return err
		}
		return u.appendAudit(txCtx, requestID, entities.RequestStatusCompleted, "work completed", actor)
	})
	if err != nil {
		return err
	}

	metrics.RequestTransitions.WithLabelValues(string(entities.RequestStatusCompleted)).Inc()
	return nil
}

// Cancel aborts a request. The owning customer may cancel any
// non-terminal request; admins may cancel on a customer's behalf. A
// reason is mandatory.
func (u *RequestUsecase) Cancel(ctx context.Context, userID uuid.UUID, role entities.UserRole, requestID uuid.UUID, reason string) error {
	if reason == "" {
		return domainerrors.BadRequest("cancellation reason is required")
	}

	actor := entities.ActorCustomer
	var customerID uuid.UUID
	switch role {
	case entities.UserRoleAdmin:
		actor = entities.ActorAdmin
	case entities.UserRoleCustomer:
		customer, err := u.customerRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.AccessDenied("caller is not a customer")
			}
			return err
		}
		customerID = customer.ID
	default:
		return domainerrors.AccessDenied("only the customer or an admin may cancel")
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		request, err := u.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if role == entities.UserRoleCustomer && request.CustomerID != customerID {
			return domainerrors.AccessDenied("request belongs to another customer")
		}
		if !entities.CanTransition(request.Status, entities.RequestStatusCancelled) {
			return domainerrors.InvalidTransition("request can no longer be cancelled")
		}

		if err := u.requestRepo.TransitionStatus(txCtx, requestID,
			request.Status, entities.RequestStatusCancelled,
			&repositories.RequestPatch{CancellationReason: &reason}); err != nil {
			return err
		}
		return u.appendAudit(txCtx, requestID, entities.RequestStatusCancelled, reason, actor)
	})
	if err != nil {
		return err
	}

	metrics.RequestTransitions.WithLabelValues(string(entities.RequestStatusCancelled)).Inc()
	return nil
}

// GetRequest returns a request with its audit trail, newest update
// first. Visible to the owning customer, the service-owning provider
// and admins.
func (u *RequestUsecase) GetRequest(ctx context.Context, userID uuid.UUID, role entities.UserRole, requestID uuid.UUID) (*entities.ServiceRequest, []*entities.ServiceRequestUpdate, error) {
	request, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	switch role {
	case entities.UserRoleAdmin:
	case entities.UserRoleCustomer:
		customer, err := u.customerRepo.GetByUserID(ctx, userID)
		if err != nil || request.CustomerID != customer.ID {
			return nil, nil, domainerrors.AccessDenied("request belongs to another customer")
		}
	case entities.UserRoleProvider:
		provider, err := u.resolveProvider(ctx, userID)
		if err != nil {
			return nil, nil, err
		}
		service, err := u.serviceRepo.GetByID(ctx, request.ServiceID)
		if err != nil {
			return nil, nil, err
		}
		if service.ProviderID != provider.ID {
			return nil, nil, domainerrors.AccessDenied("request targets another provider's service")
		}
	default:
		return nil, nil, domainerrors.AccessDenied("unknown role")
	}

	updates, err := u.requestRepo.ListUpdates(ctx, requestID, true)
	if err != nil {
		return nil, nil, err
	}
	return request, updates, nil
}

// ListMyRequests lists the calling customer's requests, paginated
func (u *RequestUsecase) ListMyRequests(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.ServiceRequest, int, error) {
	customer, err := u.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, 0, domainerrors.AccessDenied("caller is not a customer")
		}
		return nil, 0, err
	}
	params := utils.GetPaginationParams(page, limit)
	return u.requestRepo.ListByCustomer(ctx, customer.ID, params.Limit, params.CalculateOffset())
}

// ListPendingFeed lists open requests targeting the calling provider's
// services
func (u *RequestUsecase) ListPendingFeed(ctx context.Context, userID uuid.UUID) ([]*entities.ServiceRequest, error) {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.requestRepo.ListPendingForProvider(ctx, provider.ID)
}

// ListActiveWork lists requests the calling provider has accepted or
// started
func (u *RequestUsecase) ListActiveWork(ctx context.Context, userID uuid.UUID) ([]*entities.ServiceRequest, error) {
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.requestRepo.ListActiveByProvider(ctx, provider.ID)
}

// ListPendingReview lists the customer's completed requests that have
// no review yet
func (u *RequestUsecase) ListPendingReview(ctx context.Context, userID uuid.UUID) ([]*entities.ServiceRequest, error) {
	customer, err := u.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a customer")
		}
		return nil, err
	}
	return u.requestRepo.ListCompletedWithoutReview(ctx, customer.ID)
}

func (u *RequestUsecase) appendAudit(ctx context.Context, requestID uuid.UUID, status entities.RequestStatus, message string, actor entities.ActorRole) error {
	return u.requestRepo.AppendUpdate(ctx, &entities.ServiceRequestUpdate{
		ID:        utils.GenerateUUIDv7(),
		RequestID: requestID,
		Status:    status,
		Message:   message,
		CreatedBy: actor,
	})
}

// resolveAdvanceActor maps the caller of a status advancement to its
// audit actor. Admins advance without holding a provider profile;
// everyone else must be the assigned provider, checked by the caller
// against the returned provider id.
func (u *RequestUsecase) resolveAdvanceActor(ctx context.Context, userID uuid.UUID, role entities.UserRole) (entities.ActorRole, uuid.UUID, error) {
	if role == entities.UserRoleAdmin {
		return entities.ActorAdmin, uuid.Nil, nil
	}
	provider, err := u.resolveProvider(ctx, userID)
	if err != nil {
		return "", uuid.Nil, err
	}
	return entities.ActorProvider, provider.ID, nil
}

func (u *RequestUsecase) resolveProvider(ctx context.Context, userID uuid.UUID) (*entities.ServiceProviderProfile, error) {
	provider, err := u.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a provider")
		}
		return nil, err
	}
	return provider, nil
}

func requireAssigned(request *entities.ServiceRequest, providerID uuid.UUID) error {
	if request.ProviderID == nil || *request.ProviderID != providerID {
		return domainerrors.AccessDenied("request is assigned to another provider")
	}
	return nil
}
