package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"servicehub.backend/internal/domain/entities"
	"servicehub.backend/internal/domain/repositories"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, profile *entities.CustomerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CustomerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CustomerProfile), args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CustomerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CustomerProfile), args.Error(1)
}

// Mock ProviderRepository
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Create(ctx context.Context, provider *entities.ServiceProviderProfile) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceProviderProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceProviderProfile), args.Error(1)
}

func (m *MockProviderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.ServiceProviderProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceProviderProfile), args.Error(1)
}

func (m *MockProviderRepository) GetByLicense(ctx context.Context, license string) (*entities.ServiceProviderProfile, error) {
	args := m.Called(ctx, license)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceProviderProfile), args.Error(1)
}

func (m *MockProviderRepository) ListWithLocation(ctx context.Context) ([]*entities.ServiceProviderProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ServiceProviderProfile), args.Error(1)
}

func (m *MockProviderRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

func (m *MockProviderRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockProviderRepository) IncrementDues(ctx context.Context, id uuid.UUID, amount float64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockProviderRepository) DecrementDues(ctx context.Context, id uuid.UUID, amount float64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockProviderRepository) ApplyReview(ctx context.Context, id uuid.UUID, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

// Mock VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByLicensePlate(ctx context.Context, plate string) (*entities.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.Vehicle, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ServiceCategoryRepository
type MockServiceCategoryRepository struct {
	mock.Mock
}

func (m *MockServiceCategoryRepository) Create(ctx context.Context, category *entities.ServiceCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockServiceCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceCategory), args.Error(1)
}

func (m *MockServiceCategoryRepository) ListActive(ctx context.Context) ([]*entities.ServiceCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ServiceCategory), args.Error(1)
}

// Mock ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Service), args.Error(1)
}

func (m *MockServiceRepository) ListAvailable(ctx context.Context, filter entities.ServiceFilter, limit, offset int) ([]*entities.Service, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Service), args.Int(1), args.Error(2)
}

func (m *MockServiceRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Service), args.Error(1)
}

func (m *MockServiceRepository) ListAvailableByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ServiceRequestRepository
type MockServiceRequestRepository struct {
	mock.Mock
}

func (m *MockServiceRequestRepository) Create(ctx context.Context, request *entities.ServiceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockServiceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entities.RequestStatus, patch *repositories.RequestPatch) error {
	args := m.Called(ctx, id, from, to, patch)
	return args.Error(0)
}

func (m *MockServiceRequestRepository) AppendUpdate(ctx context.Context, update *entities.ServiceRequestUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockServiceRequestRepository) ListUpdates(ctx context.Context, requestID uuid.UUID, desc bool) ([]*entities.ServiceRequestUpdate, error) {
	args := m.Called(ctx, requestID, desc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ServiceRequestUpdate), args.Error(1)
}

func (m *MockServiceRequestRepository) CountUpdates(ctx context.Context, requestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceRequestRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.ServiceRequest, int, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ServiceRequest), args.Int(1), args.Error(2)
}

func (m *MockServiceRequestRepository) ListPendingForProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.ServiceRequest, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.ServiceRequest, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) ListCompletedWithoutReview(ctx context.Context, customerID uuid.UUID) ([]*entities.ServiceRequest, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ServiceRequest), args.Error(1)
}

// Mock InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *entities.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*entities.Invoice, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountByIssueDate(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdatePaymentState(ctx context.Context, id uuid.UUID, paidAmount float64, status entities.InvoiceStatus, paidAt *time.Time) error {
	args := m.Called(ctx, id, paidAmount, status, paidAt)
	return args.Error(0)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entities.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payment), args.Error(1)
}

// Mock CommissionRepository
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) Create(ctx context.Context, commission *entities.Commission) error {
	args := m.Called(ctx, commission)
	return args.Error(0)
}

func (m *MockCommissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Commission), args.Error(1)
}

func (m *MockCommissionRepository) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entities.Commission, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Commission), args.Error(1)
}

func (m *MockCommissionRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entities.Commission, int, error) {
	args := m.Called(ctx, providerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Commission), args.Int(1), args.Error(2)
}

func (m *MockCommissionRepository) ListPendingDueBefore(ctx context.Context, now time.Time) ([]*entities.Commission, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Commission), args.Error(1)
}

func (m *MockCommissionRepository) MarkOverdue(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommissionRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (entities.CommissionStatus, error) {
	args := m.Called(ctx, id, paidAt)
	return args.Get(0).(entities.CommissionStatus), args.Error(1)
}

// Mock ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*entities.Review, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) ListApprovedByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entities.Review, int, error) {
	args := m.Called(ctx, providerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Review), args.Int(1), args.Error(2)
}
