package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RequestStatus represents the lifecycle state of a service request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
	RequestStatusRejected   RequestStatus = "rejected"
)

// Valid reports whether the status is a known variant.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusCancelled, RequestStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave this status.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusCancelled, RequestStatusRejected:
		return true
	}
	return false
}

// legalTransitions is the full state machine. Any (from, to) pair not
// listed here is an invalid transition.
var legalTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    {RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled},
	RequestStatusAccepted:   {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCancelled},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to RequestStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RequestPriority represents request urgency
type RequestPriority string

const (
	RequestPriorityLow       RequestPriority = "low"
	RequestPriorityMedium    RequestPriority = "medium"
	RequestPriorityHigh      RequestPriority = "high"
	RequestPriorityEmergency RequestPriority = "emergency"
)

// Valid reports whether the priority is a known variant.
func (p RequestPriority) Valid() bool {
	switch p {
	case RequestPriorityLow, RequestPriorityMedium, RequestPriorityHigh, RequestPriorityEmergency:
		return true
	}
	return false
}

// ActorRole identifies who performed a lifecycle transition
type ActorRole string

const (
	ActorCustomer ActorRole = "customer"
	ActorProvider ActorRole = "provider"
	ActorAdmin    ActorRole = "admin"
)

// ServiceRequest is the central marketplace entity. ProviderID stays
// null until a provider accepts; it is null iff the status is pending
// or rejected.
type ServiceRequest struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customerId"`
	ProviderID *uuid.UUID `json:"providerId,omitempty"`
	ServiceID  uuid.UUID  `json:"serviceId"`
	VehicleID  uuid.UUID  `json:"vehicleId"`

	Description string          `json:"description"`
	Priority    RequestPriority `json:"priority"`
	Status      RequestStatus   `json:"status"`

	PickupLatitude  float64 `json:"pickupLatitude"`
	PickupLongitude float64 `json:"pickupLongitude"`
	PickupAddress   string  `json:"pickupAddress"`

	RequestedAt  time.Time `json:"requestedAt"`
	AcceptedAt   null.Time `json:"acceptedAt,omitempty"`
	StartedAt    null.Time `json:"startedAt,omitempty"`
	CompletedAt  null.Time `json:"completedAt,omitempty"`
	ScheduledFor null.Time `json:"scheduledFor,omitempty"`

	EstimatedCost      null.Float64 `json:"estimatedCost,omitempty"`
	FinalCost          null.Float64 `json:"finalCost,omitempty"`
	CancellationReason null.String  `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Service  *Service                `json:"service,omitempty"`
	Vehicle  *Vehicle                `json:"vehicle,omitempty"`
	Customer *CustomerProfile        `json:"customer,omitempty"`
	Provider *ServiceProviderProfile `json:"provider,omitempty"`
}

// ServiceRequestUpdate is one immutable audit row. Rows are only ever
// inserted, never mutated; replaying them in creation order
// reconstructs the request's lifecycle.
type ServiceRequestUpdate struct {
	ID        uuid.UUID     `json:"id"`
	RequestID uuid.UUID     `json:"requestId"`
	Status    RequestStatus `json:"status"`
	Message   string        `json:"message"`
	CreatedBy ActorRole     `json:"createdBy"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CreateRequestInput represents input for creating a service request
type CreateRequestInput struct {
	ServiceID       uuid.UUID       `json:"serviceId" binding:"required"`
	VehicleID       uuid.UUID       `json:"vehicleId" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Priority        RequestPriority `json:"priority,omitempty"`
	PickupLatitude  float64         `json:"pickupLatitude" binding:"required"`
	PickupLongitude float64         `json:"pickupLongitude" binding:"required"`
	PickupAddress   string          `json:"pickupAddress" binding:"required"`
	ScheduledFor    *time.Time      `json:"scheduledFor,omitempty"`
}
