package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/interfaces/http/middleware"
	"servicehub.backend/internal/interfaces/http/response"
	"servicehub.backend/internal/usecases"
	"servicehub.backend/pkg/utils"
)

// BillingHandler handles invoice, payment and commission endpoints
type BillingHandler struct {
	billingUsecase *usecases.BillingUsecase
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingUsecase *usecases.BillingUsecase) *BillingHandler {
	return &BillingHandler{billingUsecase: billingUsecase}
}

// IssueInvoice generates the invoice for a completed request
// POST /api/v1/provider/requests/:id/invoice
func (h *BillingHandler) IssueInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request ID"))
		return
	}

	var input entities.IssueInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invoice, err := h.billingUsecase.IssueInvoice(c.Request.Context(), userID, requestID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, invoice)
}

// GetInvoice returns an invoice with its line items
// GET /api/v1/invoices/:id
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice ID"))
		return
	}

	invoice, err := h.billingUsecase.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoice)
}

// GetRequestInvoice returns the invoice issued for a request
// GET /api/v1/requests/:id/invoice
func (h *BillingHandler) GetRequestInvoice(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request ID"))
		return
	}

	invoice, err := h.billingUsecase.GetInvoiceForRequest(c.Request.Context(), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoice)
}

// RecordPayment appends a payment to an invoice
// POST /api/v1/invoices/:id/payments
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invoice ID"))
		return
	}

	var input entities.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	payment, err := h.billingUsecase.RecordPayment(c.Request.Context(), userID, role, invoiceID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, payment)
}

// ListMyCommissions lists the calling provider's commissions
// GET /api/v1/provider/commissions?page=&limit=
func (h *BillingHandler) ListMyCommissions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}
	page, limit := paginationQuery(c)

	commissions, total, err := h.billingUsecase.ListMyCommissions(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, commissions, utils.CalculateMeta(int64(total), page, limit))
}

// PayCommission settles one of the caller's commissions
// POST /api/v1/provider/commissions/:id/pay
func (h *BillingHandler) PayCommission(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid commission ID"))
		return
	}

	commission, err := h.billingUsecase.PayCommission(c.Request.Context(), userID, commissionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, commission)
}

// RunOverdueSweep triggers the overdue commission sweep on demand. The
// background job runs the same sweep on a schedule.
// POST /api/v1/admin/commissions/sweep
func (h *BillingHandler) RunOverdueSweep(c *gin.Context) {
	flipped, err := h.billingUsecase.RunOverdueSweep(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"markedOverdue": flipped})
}
