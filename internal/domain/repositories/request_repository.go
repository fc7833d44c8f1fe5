package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
)

// RequestPatch carries the column updates that ride along with a status
// transition. Nil fields are left untouched.
type RequestPatch struct {
	ProviderID         *uuid.UUID
	AcceptedAt         *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	FinalCost          *float64
	CancellationReason *string
}

// ServiceRequestRepository defines request lifecycle data operations
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entities.ServiceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceRequest, error)
	// TransitionStatus atomically moves the request from `from` to `to`
	// together with the patch columns. The stored status must still be
	// `from` at write time; when it is not (a concurrent transition
	// won), no row changes and ErrInvalidTransition is returned. This
	// compare-and-set is what serializes concurrent accepts.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entities.RequestStatus, patch *RequestPatch) error
	AppendUpdate(ctx context.Context, update *entities.ServiceRequestUpdate) error
	// ListUpdates returns the audit trail, newest first when desc is
	// true (display order) and oldest first otherwise (replay order).
	ListUpdates(ctx context.Context, requestID uuid.UUID, desc bool) ([]*entities.ServiceRequestUpdate, error)
	CountUpdates(ctx context.Context, requestID uuid.UUID) (int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.ServiceRequest, int, error)
	// ListPendingForProvider matches pending requests by service
	// ownership, since no provider is assigned yet.
	ListPendingForProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.ServiceRequest, error)
	ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.ServiceRequest, error)
	// ListCompletedWithoutReview supports the pending-review list.
	ListCompletedWithoutReview(ctx context.Context, customerID uuid.UUID) ([]*entities.ServiceRequest, error)
}
