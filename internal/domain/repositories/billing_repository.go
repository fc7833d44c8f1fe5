package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
)

// InvoiceRepository defines invoice ledger data operations
type InvoiceRepository interface {
	// Create persists the invoice together with its line items.
	Create(ctx context.Context, invoice *entities.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	GetByRequestID(ctx context.Context, requestID uuid.UUID) (*entities.Invoice, error)
	// CountByIssueDate counts invoices issued on the given calendar
	// day. The per-day invoice-number sequence is derived from it, so
	// callers must run it inside the same transaction as Create.
	CountByIssueDate(ctx context.Context, day time.Time) (int64, error)
	UpdatePaymentState(ctx context.Context, id uuid.UUID, paidAmount float64, status entities.InvoiceStatus, paidAt *time.Time) error
}

// PaymentRepository defines payment ledger data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entities.Payment, error)
}

// CommissionRepository defines commission accrual data operations
type CommissionRepository interface {
	Create(ctx context.Context, commission *entities.Commission) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error)
	GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entities.Commission, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entities.Commission, int, error)
	// ListPendingDueBefore returns commissions still pending whose due
	// date has passed, candidates for the overdue sweep.
	ListPendingDueBefore(ctx context.Context, now time.Time) ([]*entities.Commission, error)
	// MarkOverdue flips the commission to overdue only if it is still
	// pending; it reports whether this call performed the flip. The
	// rows-affected guard keeps a concurrent sweep or payment from
	// double-counting dues.
	MarkOverdue(ctx context.Context, id uuid.UUID) (bool, error)
	// MarkPaid settles a pending or overdue commission; it reports the
	// previous status so the caller knows whether dues must be reversed.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (entities.CommissionStatus, error)
}
