package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	domainRepos "servicehub.backend/internal/domain/repositories"
	"servicehub.backend/internal/infrastructure/models"
)

// ServiceRequestRepository implements request lifecycle data operations
type ServiceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates a new request repository
func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

// Create creates a service request
func (r *ServiceRequestRepository) Create(ctx context.Context, request *entities.ServiceRequest) error {
	m := requestToModel(request)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	request.ID = m.ID
	request.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a request with service, vehicle and profiles joined
func (r *ServiceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceRequest, error) {
	var m models.ServiceRequest
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Preload("Service").Preload("Vehicle").Preload("Customer").Preload("Provider").
		Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return requestToEntityWithJoins(&m), nil
}

// TransitionStatus performs the status compare-and-set together with
// the patch columns. A zero rows-affected result means another actor
// moved the request first; the caller sees ErrInvalidTransition and
// nothing is written.
func (r *ServiceRequestRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entities.RequestStatus, patch *domainRepos.RequestPatch) error {
	set := map[string]interface{}{"status": string(to)}
	if patch != nil {
		if patch.ProviderID != nil {
			set["provider_id"] = *patch.ProviderID
		}
		if patch.AcceptedAt != nil {
			set["accepted_at"] = *patch.AcceptedAt
		}
		if patch.StartedAt != nil {
			set["started_at"] = *patch.StartedAt
		}
		if patch.CompletedAt != nil {
			set["completed_at"] = *patch.CompletedAt
		}
		if patch.FinalCost != nil {
			set["final_cost"] = *patch.FinalCost
		}
		if patch.CancellationReason != nil {
			set["cancellation_reason"] = *patch.CancellationReason
		}
	}

	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.ServiceRequest{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(set)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

// AppendUpdate inserts one immutable audit row
func (r *ServiceRequestRepository) AppendUpdate(ctx context.Context, update *entities.ServiceRequestUpdate) error {
	m := &models.ServiceRequestUpdate{
		ID:        update.ID,
		RequestID: update.RequestID,
		Status:    string(update.Status),
		Message:   update.Message,
		CreatedBy: string(update.CreatedBy),
		CreatedAt: update.CreatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	update.ID = m.ID
	return nil
}

// ListUpdates returns the audit trail for a request
func (r *ServiceRequestRepository) ListUpdates(ctx context.Context, requestID uuid.UUID, desc bool) ([]*entities.ServiceRequestUpdate, error) {
	order := "created_at ASC"
	if desc {
		order = "created_at DESC"
	}
	var ms []models.ServiceRequestUpdate
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("request_id = ?", requestID).Order(order).Find(&ms).Error; err != nil {
		return nil, err
	}
	updates := make([]*entities.ServiceRequestUpdate, 0, len(ms))
	for i := range ms {
		updates = append(updates, &entities.ServiceRequestUpdate{
			ID:        ms[i].ID,
			RequestID: ms[i].RequestID,
			Status:    entities.RequestStatus(ms[i].Status),
			Message:   ms[i].Message,
			CreatedBy: entities.ActorRole(ms[i].CreatedBy),
			CreatedAt: ms[i].CreatedAt,
		})
	}
	return updates, nil
}

// CountUpdates counts audit rows for a request
func (r *ServiceRequestRepository) CountUpdates(ctx context.Context, requestID uuid.UUID) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.ServiceRequestUpdate{}).Where("request_id = ?", requestID).Count(&total).Error
	return total, err
}

// ListByCustomer lists a customer's requests newest first, paginated
func (r *ServiceRequestRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.ServiceRequest, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.ServiceRequest{}).Where("customer_id = ?", customerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := db.WithContext(ctx).Preload("Service").Where("customer_id = ?", customerID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var ms []models.ServiceRequest
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]*entities.ServiceRequest, 0, len(ms))
	for i := range ms {
		e := requestToEntity(&ms[i])
		e.Service = serviceToEntity(&ms[i].Service)
		requests = append(requests, e)
	}
	return requests, int(total), nil
}

// ListPendingForProvider matches pending requests by service ownership;
// no provider is assigned while a request is pending.
func (r *ServiceRequestRepository) ListPendingForProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.ServiceRequest, error) {
	var ms []models.ServiceRequest
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Joins("JOIN services ON services.id = service_requests.service_id").
		Where("services.provider_id = ? AND service_requests.status = ?", providerID, string(entities.RequestStatusPending)).
		Preload("Service").Preload("Vehicle").
		Order("service_requests.created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return requestsToEntities(ms), nil
}

// ListActiveByProvider lists accepted and in-progress requests assigned
// to the provider
func (r *ServiceRequestRepository) ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.ServiceRequest, error) {
	var ms []models.ServiceRequest
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("provider_id = ? AND status IN ?", providerID,
			[]string{string(entities.RequestStatusAccepted), string(entities.RequestStatusInProgress)}).
		Preload("Service").Preload("Vehicle").
		Order("accepted_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return requestsToEntities(ms), nil
}

// ListCompletedWithoutReview lists completed requests the customer has
// not reviewed yet
func (r *ServiceRequestRepository) ListCompletedWithoutReview(ctx context.Context, customerID uuid.UUID) ([]*entities.ServiceRequest, error) {
	var ms []models.ServiceRequest
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, string(entities.RequestStatusCompleted)).
		Where("id NOT IN (?)", db.WithContext(ctx).Model(&models.Review{}).Select("request_id")).
		Preload("Service").
		Order("completed_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return requestsToEntities(ms), nil
}

func requestsToEntities(ms []models.ServiceRequest) []*entities.ServiceRequest {
	requests := make([]*entities.ServiceRequest, 0, len(ms))
	for i := range ms {
		e := requestToEntity(&ms[i])
		e.Service = serviceToEntity(&ms[i].Service)
		requests = append(requests, e)
	}
	return requests
}

func requestToModel(e *entities.ServiceRequest) *models.ServiceRequest {
	m := &models.ServiceRequest{
		ID:              e.ID,
		CustomerID:      e.CustomerID,
		ProviderID:      e.ProviderID,
		ServiceID:       e.ServiceID,
		VehicleID:       e.VehicleID,
		Description:     e.Description,
		Priority:        string(e.Priority),
		Status:          string(e.Status),
		PickupLatitude:  e.PickupLatitude,
		PickupLongitude: e.PickupLongitude,
		PickupAddress:   e.PickupAddress,
		RequestedAt:     e.RequestedAt,
	}
	if e.ScheduledFor.Valid {
		v := e.ScheduledFor.Time
		m.ScheduledFor = &v
	}
	if e.EstimatedCost.Valid {
		v := e.EstimatedCost.Float64
		m.EstimatedCost = &v
	}
	return m
}

func requestToEntity(m *models.ServiceRequest) *entities.ServiceRequest {
	e := &entities.ServiceRequest{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		ProviderID:      m.ProviderID,
		ServiceID:       m.ServiceID,
		VehicleID:       m.VehicleID,
		Description:     m.Description,
		Priority:        entities.RequestPriority(m.Priority),
		Status:          entities.RequestStatus(m.Status),
		PickupLatitude:  m.PickupLatitude,
		PickupLongitude: m.PickupLongitude,
		PickupAddress:   m.PickupAddress,
		RequestedAt:     m.RequestedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.AcceptedAt != nil {
		e.AcceptedAt = null.TimeFrom(*m.AcceptedAt)
	}
	if m.StartedAt != nil {
		e.StartedAt = null.TimeFrom(*m.StartedAt)
	}
	if m.CompletedAt != nil {
		e.CompletedAt = null.TimeFrom(*m.CompletedAt)
	}
	if m.ScheduledFor != nil {
		e.ScheduledFor = null.TimeFrom(*m.ScheduledFor)
	}
	if m.EstimatedCost != nil {
		e.EstimatedCost = null.Float64From(*m.EstimatedCost)
	}
	if m.FinalCost != nil {
		e.FinalCost = null.Float64From(*m.FinalCost)
	}
	if m.CancellationReason != nil {
		e.CancellationReason = null.StringFrom(*m.CancellationReason)
	}
	return e
}

func requestToEntityWithJoins(m *models.ServiceRequest) *entities.ServiceRequest {
	e := requestToEntity(m)
	e.Service = serviceToEntity(&m.Service)
	e.Vehicle = vehicleToEntity(&m.Vehicle)
	e.Customer = customerToEntity(&m.Customer)
	if m.Provider != nil {
		e.Provider = providerToEntity(m.Provider)
	}
	return e
}
