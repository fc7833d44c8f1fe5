package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/infrastructure/models"
)

// InvoiceRepository implements invoice ledger data operations
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create persists an invoice together with its line items
func (r *InvoiceRepository) Create(ctx context.Context, invoice *entities.Invoice) error {
	m := invoiceToModel(invoice)
	for _, item := range invoice.Items {
		m.Items = append(m.Items, models.InvoiceItem{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.Quantity * item.UnitPrice,
		})
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	invoice.ID = m.ID
	for i := range m.Items {
		invoice.Items[i].ID = m.Items[i].ID
		invoice.Items[i].InvoiceID = m.ID
		invoice.Items[i].TotalPrice = m.Items[i].TotalPrice
	}
	return nil
}

// GetByID gets an invoice with items
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	var m models.Invoice
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return invoiceToEntity(&m), nil
}

// GetByRequestID gets the 1:1 invoice for a request
func (r *InvoiceRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*entities.Invoice, error) {
	var m models.Invoice
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Items").Where("request_id = ?", requestID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return invoiceToEntity(&m), nil
}

// CountByIssueDate counts invoices issued within the given calendar day
func (r *InvoiceRepository) CountByIssueDate(ctx context.Context, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Invoice{}).
		Where("issued_at >= ? AND issued_at < ?", start, end).
		Count(&total).Error
	return total, err
}

// UpdatePaymentState sets the caller-directed paid amount and status
func (r *InvoiceRepository) UpdatePaymentState(ctx context.Context, id uuid.UUID, paidAmount float64, status entities.InvoiceStatus, paidAt *time.Time) error {
	set := map[string]interface{}{
		"paid_amount": paidAmount,
		"status":      string(status),
	}
	if paidAt != nil {
		set["paid_at"] = *paidAt
	}
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.Invoice{}).Where("id = ?", id).Updates(set)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func invoiceToModel(e *entities.Invoice) *models.Invoice {
	m := &models.Invoice{
		ID:             e.ID,
		RequestID:      e.RequestID,
		InvoiceNumber:  e.InvoiceNumber,
		Subtotal:       e.Subtotal,
		TaxAmount:      e.TaxAmount,
		DiscountAmount: e.DiscountAmount,
		TotalAmount:    e.TotalAmount,
		Status:         string(e.Status),
		PaidAmount:     e.PaidAmount,
		IssuedAt:       e.IssuedAt,
		DueDate:        e.DueDate,
	}
	if e.PaymentMethod.Valid {
		v := e.PaymentMethod.String
		m.PaymentMethod = &v
	}
	if e.Notes.Valid {
		v := e.Notes.String
		m.Notes = &v
	}
	return m
}

func invoiceToEntity(m *models.Invoice) *entities.Invoice {
	e := &entities.Invoice{
		ID:             m.ID,
		RequestID:      m.RequestID,
		InvoiceNumber:  m.InvoiceNumber,
		Subtotal:       m.Subtotal,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		TotalAmount:    m.TotalAmount,
		Status:         entities.InvoiceStatus(m.Status),
		PaidAmount:     m.PaidAmount,
		IssuedAt:       m.IssuedAt,
		DueDate:        m.DueDate,
	}
	if m.PaymentMethod != nil {
		e.PaymentMethod = null.StringFrom(*m.PaymentMethod)
	}
	if m.PaidAt != nil {
		e.PaidAt = null.TimeFrom(*m.PaidAt)
	}
	if m.Notes != nil {
		e.Notes = null.StringFrom(*m.Notes)
	}
	for i := range m.Items {
		e.Items = append(e.Items, &entities.InvoiceItem{
			ID:          m.Items[i].ID,
			InvoiceID:   m.Items[i].InvoiceID,
			Description: m.Items[i].Description,
			Quantity:    m.Items[i].Quantity,
			UnitPrice:   m.Items[i].UnitPrice,
			TotalPrice:  m.Items[i].TotalPrice,
		})
	}
	return e
}

// PaymentRepository implements payment ledger data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create appends a ledger entry
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	m := &models.Payment{
		ID:        payment.ID,
		InvoiceID: payment.InvoiceID,
		Amount:    payment.Amount,
		Method:    string(payment.Method),
		Status:    string(payment.Status),
	}
	if payment.TransactionID.Valid {
		v := payment.TransactionID.String
		m.TransactionID = &v
	}
	if payment.ProcessedAt.Valid {
		v := payment.ProcessedAt.Time
		m.ProcessedAt = &v
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	payment.ID = m.ID
	payment.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return paymentToEntity(&m), nil
}

// ListByInvoice lists payments against an invoice oldest first
func (r *PaymentRepository) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entities.Payment, error) {
	var ms []models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	payments := make([]*entities.Payment, 0, len(ms))
	for i := range ms {
		payments = append(payments, paymentToEntity(&ms[i]))
	}
	return payments, nil
}

func paymentToEntity(m *models.Payment) *entities.Payment {
	e := &entities.Payment{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		Amount:    m.Amount,
		Method:    entities.PaymentMethod(m.Method),
		Status:    entities.PaymentStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
	if m.TransactionID != nil {
		e.TransactionID = null.StringFrom(*m.TransactionID)
	}
	if m.ProcessedAt != nil {
		e.ProcessedAt = null.TimeFrom(*m.ProcessedAt)
	}
	return e
}

// CommissionRepository implements commission accrual data operations
type CommissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// Create creates a commission record
func (r *CommissionRepository) Create(ctx context.Context, commission *entities.Commission) error {
	m := &models.Commission{
		ID:            commission.ID,
		ProviderID:    commission.ProviderID,
		PaymentID:     commission.PaymentID,
		Rate:          commission.Rate,
		Amount:        commission.Amount,
		Status:        string(commission.Status),
		IsCashPayment: commission.IsCashPayment,
		DueDate:       commission.DueDate,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	commission.ID = m.ID
	commission.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a commission by ID
func (r *CommissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error) {
	var m models.Commission
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return commissionToEntity(&m), nil
}

// GetByPaymentID gets the 1:1 commission for a payment
func (r *CommissionRepository) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entities.Commission, error) {
	var m models.Commission
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return commissionToEntity(&m), nil
}

// ListByProvider lists a provider's commissions newest first, paginated
func (r *CommissionRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entities.Commission, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Commission{}).Where("provider_id = ?", providerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := db.WithContext(ctx).Where("provider_id = ?", providerID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var ms []models.Commission
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	commissions := make([]*entities.Commission, 0, len(ms))
	for i := range ms {
		commissions = append(commissions, commissionToEntity(&ms[i]))
	}
	return commissions, int(total), nil
}

// ListPendingDueBefore lists sweep candidates
func (r *CommissionRepository) ListPendingDueBefore(ctx context.Context, now time.Time) ([]*entities.Commission, error) {
	var ms []models.Commission
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("status = ? AND due_date < ?", string(entities.CommissionStatusPending), now).
		Order("due_date ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	commissions := make([]*entities.Commission, 0, len(ms))
	for i := range ms {
		commissions = append(commissions, commissionToEntity(&ms[i]))
	}
	return commissions, nil
}

// MarkOverdue flips pending -> overdue. The status guard in the WHERE
// clause makes re-running the sweep a no-op for rows already flipped.
func (r *CommissionRepository) MarkOverdue(ctx context.Context, id uuid.UUID) (bool, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.Commission{}).
		Where("id = ? AND status = ?", id, string(entities.CommissionStatusPending)).
		Update("status", string(entities.CommissionStatusOverdue))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkPaid settles a pending or overdue commission and reports the
// status it held before settlement
func (r *CommissionRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (entities.CommissionStatus, error) {
	var m models.Commission
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrNotFound
		}
		return "", err
	}

	previous := entities.CommissionStatus(m.Status)
	if previous == entities.CommissionStatusPaid {
		return "", domainerrors.ErrInvalidTransition
	}

	res := db.WithContext(ctx).Model(&models.Commission{}).
		Where("id = ? AND status = ?", id, m.Status).
		Updates(map[string]interface{}{
			"status":  string(entities.CommissionStatusPaid),
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", domainerrors.ErrInvalidTransition
	}
	return previous, nil
}

func commissionToEntity(m *models.Commission) *entities.Commission {
	e := &entities.Commission{
		ID:            m.ID,
		ProviderID:    m.ProviderID,
		PaymentID:     m.PaymentID,
		Rate:          m.Rate,
		Amount:        m.Amount,
		Status:        entities.CommissionStatus(m.Status),
		IsCashPayment: m.IsCashPayment,
		DueDate:       m.DueDate,
		CreatedAt:     m.CreatedAt,
	}
	if m.PaidAt != nil {
		e.PaidAt = null.TimeFrom(*m.PaidAt)
	}
	return e
}
