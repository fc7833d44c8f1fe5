package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// InvoiceStatus represents an invoice's payment state. The ledger does
// not flip this automatically on partial payment; the caller sets it.
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// Invoice ties 1:1 to a completed service request. Numbers follow
// INV-<YYYYMMDD>-<NNNN> with a per-day counter starting at 1.
type Invoice struct {
	ID             uuid.UUID     `json:"id"`
	RequestID      uuid.UUID     `json:"requestId"`
	InvoiceNumber  string        `json:"invoiceNumber"`
	Subtotal       float64       `json:"subtotal"`
	TaxAmount      float64       `json:"taxAmount"`
	DiscountAmount float64       `json:"discountAmount"`
	TotalAmount    float64       `json:"totalAmount"`
	Status         InvoiceStatus `json:"status"`
	PaymentMethod  null.String   `json:"paymentMethod,omitempty"`
	PaidAmount     float64       `json:"paidAmount"`
	IssuedAt       time.Time     `json:"issuedAt"`
	DueDate        time.Time     `json:"dueDate"`
	PaidAt         null.Time     `json:"paidAt,omitempty"`
	Notes          null.String   `json:"notes,omitempty"`

	Items    []*InvoiceItem `json:"items,omitempty"`
	Payments []*Payment     `json:"payments,omitempty"`
}

// RemainingAmount is the derived balance still owed.
func (i *Invoice) RemainingAmount() float64 {
	return i.TotalAmount - i.PaidAmount
}

// InvoiceItem is one line on an invoice. TotalPrice is recomputed as
// Quantity * UnitPrice on every write.
type InvoiceItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoiceId"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	TotalPrice  float64   `json:"totalPrice"`
}

// PaymentStatus represents a ledger entry's state
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment records a ledger entry against an invoice. Gateway
// integration is out of scope; TransactionID is caller-supplied.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	InvoiceID     uuid.UUID     `json:"invoiceId"`
	Amount        float64       `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID null.String   `json:"transactionId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	ProcessedAt   null.Time     `json:"processedAt,omitempty"`
}

// CommissionStatus represents the platform cut's collection state
type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "pending"
	CommissionStatusPaid    CommissionStatus = "paid"
	CommissionStatusOverdue CommissionStatus = "overdue"
)

// Commission is the platform's share of one payment, 1:1 with it. The
// rate is snapshotted at payment time so later rate changes do not
// reprice old commissions. Transitioning to overdue increments the
// provider's dues counters exactly once; that increment is the sole
// feedback path into the eligibility gate.
type Commission struct {
	ID            uuid.UUID        `json:"id"`
	ProviderID    uuid.UUID        `json:"providerId"`
	PaymentID     uuid.UUID        `json:"paymentId"`
	Rate          float64          `json:"rate"`
	Amount        float64          `json:"amount"`
	Status        CommissionStatus `json:"status"`
	IsCashPayment bool             `json:"isCashPayment"`
	DueDate       time.Time        `json:"dueDate"`
	PaidAt        null.Time        `json:"paidAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// IssueInvoiceInput represents input for generating an invoice
type IssueInvoiceInput struct {
	Items          []InvoiceItemInput `json:"items" binding:"required,min=1"`
	TaxAmount      float64            `json:"taxAmount"`
	DiscountAmount float64            `json:"discountAmount"`
	DueDate        *time.Time         `json:"dueDate,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// InvoiceItemInput is one requested line item
type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"required,gt=0"`
}

// RecordPaymentInput represents input for recording a payment
type RecordPaymentInput struct {
	Amount        float64       `json:"amount" binding:"required,gt=0"`
	Method        PaymentMethod `json:"method" binding:"required"`
	TransactionID string        `json:"transactionId,omitempty"`
}
