package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/interfaces/http/middleware"
	"servicehub.backend/internal/interfaces/http/response"
	"servicehub.backend/internal/usecases"
	"servicehub.backend/pkg/utils"
)

// RequestHandler handles service request lifecycle endpoints
type RequestHandler struct {
	requestUsecase *usecases.RequestUsecase
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestUsecase *usecases.RequestUsecase) *RequestHandler {
	return &RequestHandler{requestUsecase: requestUsecase}
}

type cancelRequestBody struct {
	Reason string `json:"reason" binding:"required"`
}

type rejectRequestBody struct {
	Reason string `json:"reason"`
}

type completeRequestBody struct {
	FinalCost *float64 `json:"finalCost,omitempty"`
}

// CreateRequest opens a new service request
// POST /api/v1/requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request, err := h.requestUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, request)
}

// GetRequest returns a request with its audit trail
// GET /api/v1/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request ID"))
		return
	}

	request, updates, err := h.requestUsecase.GetRequest(c.Request.Context(), userID, role, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"request": request,
		"updates": updates,
	})
}

// ListMyRequests lists the calling customer's requests
// GET /api/v1/requests?page=&limit=
func (h *RequestHandler) ListMyRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}
	page, limit := paginationQuery(c)

	requests, total, err := h.requestUsecase.ListMyRequests(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, requests, utils.CalculateMeta(int64(total), page, limit))
}

// ListPendingReview lists completed requests awaiting the caller's
// review
// GET /api/v1/requests/pending-review
func (h *RequestHandler) ListPendingReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requests, err := h.requestUsecase.ListPendingReview(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, requests)
}

// ListPendingFeed lists open requests matching the calling provider's
// services
// GET /api/v1/provider/requests/pending
func (h *RequestHandler) ListPendingFeed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requests, err := h.requestUsecase.ListPendingFeed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, requests)
}

// ListActiveWork lists the calling provider's accepted and in-progress
// requests
// GET /api/v1/provider/requests/active
func (h *RequestHandler) ListActiveWork(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requests, err := h.requestUsecase.ListActiveWork(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, requests)
}

// AcceptRequest assigns the calling provider to a pending request
// POST /api/v1/provider/requests/:id/accept
func (h *RequestHandler) AcceptRequest(c *gin.Context) {
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

	request, err := h.requestUsecase.Accept(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, request)
}

// RejectRequest turns down a pending request
// POST /api/v1/provider/requests/:id/reject
func (h *RequestHandler) RejectRequest(c *gin.Context) {
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

	var body rejectRequestBody
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.requestUsecase.Reject(c.Request.Context(), userID, requestID, body.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusNoContent, nil)
}

// StartRequest moves an accepted request to in_progress
// POST /api/v1/provider/requests/:id/start
// POST /api/v1/admin/requests/:id/start
func (h *RequestHandler) StartRequest(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request ID"))
		return
	}

	if err := h.requestUsecase.Start(c.Request.Context(), userID, role, requestID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusNoContent, nil)
}

// CompleteRequest finishes an in-progress request
// POST /api/v1/provider/requests/:id/complete
// POST /api/v1/admin/requests/:id/complete
func (h *RequestHandler) CompleteRequest(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request ID"))
		return
	}

	var body completeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.requestUsecase.Complete(c.Request.Context(), userID, role, requestID, body.FinalCost); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusNoContent, nil)
}

// CancelRequest aborts a request
// POST /api/v1/requests/:id/cancel
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request ID"))
		return
	}

	var body cancelRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest("cancellation reason is required"))
		return
	}

	if err := h.requestUsecase.Cancel(c.Request.Context(), userID, role, requestID, body.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusNoContent, nil)
}

func callerIdentity(c *gin.Context) (uuid.UUID, entities.UserRole, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, entities.UserRole(role), true
}
