package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/domain/repositories"
	"servicehub.backend/pkg/metrics"
	"servicehub.backend/pkg/utils"
)

// BillingUsecase runs the invoice and commission ledger. Commission
// accrual is the only writer of provider dues counters, which in turn
// feed the request eligibility gate.
type BillingUsecase struct {
	invoiceRepo    repositories.InvoiceRepository
	paymentRepo    repositories.PaymentRepository
	commissionRepo repositories.CommissionRepository
	requestRepo    repositories.ServiceRequestRepository
	providerRepo   repositories.ProviderRepository
	customerRepo   repositories.CustomerRepository
	uow            repositories.UnitOfWork
}

// NewBillingUsecase creates a new billing usecase
func NewBillingUsecase(
	invoiceRepo repositories.InvoiceRepository,
	paymentRepo repositories.PaymentRepository,
	commissionRepo repositories.CommissionRepository,
	requestRepo repositories.ServiceRequestRepository,
	providerRepo repositories.ProviderRepository,
	customerRepo repositories.CustomerRepository,
	uow repositories.UnitOfWork,
) *BillingUsecase {
	return &BillingUsecase{
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		commissionRepo: commissionRepo,
		requestRepo:    requestRepo,
		providerRepo:   providerRepo,
		customerRepo:   customerRepo,
		uow:            uow,
	}
}

// IssueInvoice generates the invoice for a completed request. At most
// one invoice exists per request; the invoice number embeds a per-day
// sequence derived inside the same transaction as the insert.
func (u *BillingUsecase) IssueInvoice(ctx context.Context, userID, requestID uuid.UUID, input *entities.IssueInvoiceInput) (*entities.Invoice, error) {
	provider, err := u.resolveBillingProvider(ctx, userID)
	if err != nil {
		return nil, err
	}

	request, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ProviderID == nil || *request.ProviderID != provider.ID {
		return nil, domainerrors.AccessDenied("request is assigned to another provider")
	}
	if request.Status != entities.RequestStatusCompleted {
		return nil, domainerrors.InvalidTransition("invoice requires a completed request")
	}

	if _, err := u.invoiceRepo.GetByRequestID(ctx, requestID); err == nil {
		return nil, domainerrors.AlreadyExists("request is already invoiced")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if input.TaxAmount < 0 || input.DiscountAmount < 0 {
		return nil, domainerrors.BadRequest("tax and discount must not be negative")
	}

	now := time.Now()
	var subtotal float64
	items := make([]*entities.InvoiceItem, 0, len(input.Items))
	for _, in := range input.Items {
		total := in.Quantity * in.UnitPrice
		subtotal += total
		items = append(items, &entities.InvoiceItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TotalPrice:  total,
		})
	}
	totalAmount := subtotal + input.TaxAmount - input.DiscountAmount
	if totalAmount < 0 {
		return nil, domainerrors.BadRequest("discount exceeds invoice total")
	}

	dueDate := now.Add(DefaultInvoiceDueIn)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	invoice := &entities.Invoice{
		ID:             utils.GenerateUUIDv7(),
		RequestID:      requestID,
		Subtotal:       subtotal,
		TaxAmount:      input.TaxAmount,
		DiscountAmount: input.DiscountAmount,
		TotalAmount:    totalAmount,
		Status:         entities.InvoiceStatusPending,
		IssuedAt:       now,
		DueDate:        dueDate,
		Items:          items,
	}
	if input.Notes != "" {
		invoice.Notes = null.StringFrom(input.Notes)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		// counted inside the tx so concurrent issuance cannot collide
		// on the same sequence number
		issuedToday, err := u.invoiceRepo.CountByIssueDate(txCtx, now)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = fmt.Sprintf("INV-%s-%04d", now.Format(invoiceNumberLayout), issuedToday+1)
		return u.invoiceRepo.Create(txCtx, invoice)
	})
	if err != nil {
		return nil, err
	}

	metrics.InvoicesIssued.Inc()
	return invoice, nil
}

// GetInvoice returns an invoice with its line items
func (u *BillingUsecase) GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*entities.Invoice, error) {
	return u.invoiceRepo.GetByID(ctx, invoiceID)
}

// GetInvoiceForRequest returns the invoice issued for a request
func (u *BillingUsecase) GetInvoiceForRequest(ctx context.Context, requestID uuid.UUID) (*entities.Invoice, error) {
	return u.invoiceRepo.GetByRequestID(ctx, requestID)
}

// RecordPayment appends a payment to an invoice's ledger and accrues
// the platform commission against the provider in the same
// transaction. Only the customer owning the invoiced request, or an
// admin, may pay. The provider's current rate is snapshotted onto the
// commission so later rate changes leave it untouched.
func (u *BillingUsecase) RecordPayment(ctx context.Context, userID uuid.UUID, role entities.UserRole, invoiceID uuid.UUID, input *entities.RecordPaymentInput) (*entities.Payment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("payment amount must be positive")
	}
	if !input.Method.Valid() {
		return nil, domainerrors.BadRequest("unknown payment method")
	}

	invoice, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == entities.InvoiceStatusCancelled {
		return nil, domainerrors.InvalidTransition("invoice is cancelled")
	}
	if input.Amount > invoice.RemainingAmount() {
		return nil, domainerrors.BadRequest("payment exceeds the remaining balance")
	}

	request, err := u.requestRepo.GetByID(ctx, invoice.RequestID)
	if err != nil {
		return nil, err
	}

	switch role {
	case entities.UserRoleAdmin:
	case entities.UserRoleCustomer:
		customer, err := u.customerRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.AccessDenied("caller is not a customer")
			}
			return nil, err
		}
		if request.CustomerID != customer.ID {
			return nil, domainerrors.AccessDenied("invoice belongs to another customer")
		}
	default:
		return nil, domainerrors.AccessDenied("only the invoiced customer or an admin may record payments")
	}

	if request.ProviderID == nil {
		return nil, domainerrors.InternalError(fmt.Errorf("invoiced request %s has no provider", request.ID))
	}
	provider, err := u.providerRepo.GetByID(ctx, *request.ProviderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &entities.Payment{
		ID:          utils.GenerateUUIDv7(),
		InvoiceID:   invoice.ID,
		Amount:      input.Amount,
		Method:      input.Method,
		Status:      entities.PaymentStatusCompleted,
		ProcessedAt: null.TimeFrom(now),
	}
	if input.TransactionID != "" {
		payment.TransactionID = null.StringFrom(input.TransactionID)
	}

	commission := &entities.Commission{
		ID:            utils.GenerateUUIDv7(),
		ProviderID:    provider.ID,
		PaymentID:     payment.ID,
		Rate:          provider.CommissionRate,
		Amount:        input.Amount * provider.CommissionRate / 100,
		Status:        entities.CommissionStatusPending,
		IsCashPayment: input.Method == entities.PaymentMethodCash,
		DueDate:       now.Add(DefaultCommissionGrace),
	}

	paidAmount := invoice.PaidAmount + input.Amount
	status := entities.InvoiceStatusPartiallyPaid
	var paidAt *time.Time
	if paidAmount >= invoice.TotalAmount {
		status = entities.InvoiceStatusPaid
		paidAt = &now
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}
		if err := u.commissionRepo.Create(txCtx, commission); err != nil {
			return err
		}
		return u.invoiceRepo.UpdatePaymentState(txCtx, invoice.ID, paidAmount, status, paidAt)
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.WithLabelValues(string(input.Method)).Inc()
	return payment, nil
}

// RunOverdueSweep flips pending commissions past their due date to
// overdue and bumps the owning provider's dues counters. Each row is
// its own transaction guarded by a compare-and-set, so re-running the
// sweep, or racing another instance of it, never double-counts. It
// returns the number of commissions flipped by this run.
func (u *BillingUsecase) RunOverdueSweep(ctx context.Context, now time.Time) (int, error) {
	due, err := u.commissionRepo.ListPendingDueBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, commission := range due {
		c := commission
		err := u.uow.Do(ctx, func(txCtx context.Context) error {
			won, err := u.commissionRepo.MarkOverdue(txCtx, c.ID)
			if err != nil {
				return err
			}
			if !won {
				return nil
			}
			if err := u.providerRepo.IncrementDues(txCtx, c.ProviderID, c.Amount); err != nil {
				return err
			}
			flipped++
			return nil
		})
		if err != nil {
			return flipped, err
		}
	}

	if flipped > 0 {
		metrics.CommissionsOverdue.Add(float64(flipped))
	}
	return flipped, nil
}

// PayCommission settles a provider's commission. Settling an overdue
// commission reverses the dues increment the sweep applied, re-opening
// the eligibility gate once the count drops below the threshold.
func (u *BillingUsecase) PayCommission(ctx context.Context, userID, commissionID uuid.UUID) (*entities.Commission, error) {
	provider, err := u.resolveBillingProvider(ctx, userID)
	if err != nil {
		return nil, err
	}

	commission, err := u.commissionRepo.GetByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	if commission.ProviderID != provider.ID {
		return nil, domainerrors.AccessDenied("commission belongs to another provider")
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		previous, err := u.commissionRepo.MarkPaid(txCtx, commissionID, time.Now())
		if err != nil {
			return err
		}
		if previous == entities.CommissionStatusOverdue {
			return u.providerRepo.DecrementDues(txCtx, provider.ID, commission.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.commissionRepo.GetByID(ctx, commissionID)
}

// ListMyCommissions lists the calling provider's commissions, newest
// first
func (u *BillingUsecase) ListMyCommissions(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Commission, int, error) {
	provider, err := u.resolveBillingProvider(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	params := utils.GetPaginationParams(page, limit)
	return u.commissionRepo.ListByProvider(ctx, provider.ID, params.Limit, params.CalculateOffset())
}

func (u *BillingUsecase) resolveBillingProvider(ctx context.Context, userID uuid.UUID) (*entities.ServiceProviderProfile, error) {
	provider, err := u.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.AccessDenied("caller is not a provider")
		}
		return nil, err
	}
	return provider, nil
}
