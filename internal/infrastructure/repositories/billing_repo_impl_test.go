package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
)

func TestInvoiceRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	requestID := uuid.New()
	inv := &entities.Invoice{
		ID:            uuid.New(),
		RequestID:     requestID,
		InvoiceNumber: "INV-20260901-0001",
		Subtotal:      500,
		TaxAmount:     50,
		TotalAmount:   550,
		Status:        entities.InvoiceStatusPending,
		IssuedAt:      time.Now(),
		DueDate:       time.Now().Add(7 * 24 * time.Hour),
		Items: []*entities.InvoiceItem{
			{ID: uuid.New(), Description: "Brake pads", Quantity: 2, UnitPrice: 150},
			{ID: uuid.New(), Description: "Labour", Quantity: 1, UnitPrice: 200},
		},
	}
	require.NoError(t, repo.Create(ctx, inv))

	got, err := repo.GetByRequestID(ctx, requestID)
	require.NoError(t, err)
	require.Equal(t, "INV-20260901-0001", got.InvoiceNumber)
	require.Len(t, got.Items, 2)
	require.Equal(t, 300.0, got.Items[0].TotalPrice)
	require.Equal(t, 200.0, got.Items[1].TotalPrice)

	byID, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, 550.0, byID.RemainingAmount())

	_, err = repo.GetByRequestID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestInvoiceRepository_CountByIssueDate(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	today := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	yesterday := today.Add(-24 * time.Hour)

	for i, issuedAt := range []time.Time{today, today.Add(-2 * time.Hour), yesterday} {
		mustExec(t, db, `INSERT INTO invoices(id,request_id,invoice_number,subtotal,tax_amount,discount_amount,total_amount,status,paid_amount,issued_at,due_date)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			uuid.NewString(), uuid.NewString(), uuid.NewString()[:18], 100.0, 0.0, 0.0, 100.0, "pending", 0.0, issuedAt, issuedAt.Add(7*24*time.Hour))
		_ = i
	}

	count, err := repo.CountByIssueDate(ctx, today)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = repo.CountByIssueDate(ctx, yesterday)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestInvoiceRepository_UpdatePaymentState(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	inv := &entities.Invoice{
		ID:            uuid.New(),
		RequestID:     uuid.New(),
		InvoiceNumber: "INV-20260901-0002",
		Subtotal:      200,
		TotalAmount:   200,
		Status:        entities.InvoiceStatusPending,
		IssuedAt:      time.Now(),
		DueDate:       time.Now().Add(7 * 24 * time.Hour),
		Items:         []*entities.InvoiceItem{{ID: uuid.New(), Description: "Tow", Quantity: 1, UnitPrice: 200}},
	}
	require.NoError(t, repo.Create(ctx, inv))

	require.NoError(t, repo.UpdatePaymentState(ctx, inv.ID, 80, entities.InvoiceStatusPartiallyPaid, nil))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusPartiallyPaid, got.Status)
	require.Equal(t, 120.0, got.RemainingAmount())
	require.False(t, got.PaidAt.Valid)

	paidAt := time.Now()
	require.NoError(t, repo.UpdatePaymentState(ctx, inv.ID, 200, entities.InvoiceStatusPaid, &paidAt))

	got, err = repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusPaid, got.Status)
	require.True(t, got.PaidAt.Valid)

	err = repo.UpdatePaymentState(ctx, uuid.New(), 10, entities.InvoiceStatusPaid, nil)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPaymentRepository_FullFlow(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	invoiceID := uuid.New()
	first := &entities.Payment{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Amount:    100,
		Method:    entities.PaymentMethodCash,
		Status:    entities.PaymentStatusCompleted,
	}
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(5 * time.Millisecond)

	second := &entities.Payment{
		ID:            uuid.New(),
		InvoiceID:     invoiceID,
		Amount:        50,
		Method:        entities.PaymentMethodOnline,
		Status:        entities.PaymentStatusCompleted,
		TransactionID: null.StringFrom("txn_0001"),
	}
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, "txn_0001", got.TransactionID.String)

	items, err := repo.ListByInvoice(ctx, invoiceID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, first.ID, items[0].ID)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCommissionRepository_MarkOverdueIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	c := &entities.Commission{
		ID:            uuid.New(),
		ProviderID:    uuid.New(),
		PaymentID:     uuid.New(),
		Rate:          10,
		Amount:        55,
		Status:        entities.CommissionStatusPending,
		IsCashPayment: true,
		DueDate:       time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, c))

	flipped, err := repo.MarkOverdue(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, flipped)

	// already overdue, nothing to flip
	flipped, err = repo.MarkOverdue(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, flipped)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.CommissionStatusOverdue, got.Status)
}

func TestCommissionRepository_ListPendingDueBefore(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	now := time.Now()
	overdue := &entities.Commission{
		ID: uuid.New(), ProviderID: uuid.New(), PaymentID: uuid.New(),
		Rate: 10, Amount: 10, Status: entities.CommissionStatusPending,
		DueDate: now.Add(-48 * time.Hour),
	}
	notDue := &entities.Commission{
		ID: uuid.New(), ProviderID: uuid.New(), PaymentID: uuid.New(),
		Rate: 10, Amount: 20, Status: entities.CommissionStatusPending,
		DueDate: now.Add(48 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, overdue))
	require.NoError(t, repo.Create(ctx, notDue))

	due, err := repo.ListPendingDueBefore(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, overdue.ID, due[0].ID)
}

func TestCommissionRepository_MarkPaid(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	c := &entities.Commission{
		ID: uuid.New(), ProviderID: uuid.New(), PaymentID: uuid.New(),
		Rate: 10, Amount: 30, Status: entities.CommissionStatusPending,
		DueDate: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, c))

	flipped, err := repo.MarkOverdue(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, flipped)

	previous, err := repo.MarkPaid(ctx, c.ID, time.Now())
	require.NoError(t, err)
	require.Equal(t, entities.CommissionStatusOverdue, previous)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.CommissionStatusPaid, got.Status)
	require.True(t, got.PaidAt.Valid)

	_, err = repo.MarkPaid(ctx, c.ID, time.Now())
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = repo.MarkPaid(ctx, uuid.New(), time.Now())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCommissionRepository_ListByProvider(t *testing.T) {
	db := newTestDB(t)
	createBillingTables(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	providerID := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entities.Commission{
			ID: uuid.New(), ProviderID: providerID, PaymentID: uuid.New(),
			Rate: 10, Amount: float64(10 * (i + 1)), Status: entities.CommissionStatusPending,
			DueDate: time.Now().Add(72 * time.Hour),
		}))
		time.Sleep(5 * time.Millisecond)
	}
	require.NoError(t, repo.Create(ctx, &entities.Commission{
		ID: uuid.New(), ProviderID: uuid.New(), PaymentID: uuid.New(),
		Rate: 10, Amount: 99, Status: entities.CommissionStatusPending,
		DueDate: time.Now().Add(72 * time.Hour),
	}))

	items, total, err := repo.ListByProvider(ctx, providerID, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, items, 2)
	require.Equal(t, 30.0, items[0].Amount)
}
