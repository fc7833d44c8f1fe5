package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/interfaces/http/response"
	"servicehub.backend/internal/usecases"
)

// AdminHandler handles platform administration endpoints
type AdminHandler struct {
	accountUsecase *usecases.AccountUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accountUsecase *usecases.AccountUsecase) *AdminHandler {
	return &AdminHandler{accountUsecase: accountUsecase}
}

type approveProviderBody struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ApproveProvider flips a provider's approval flag
// PATCH /api/v1/admin/providers/:id/approval
func (h *AdminHandler) ApproveProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid provider ID"))
		return
	}

	var body approveProviderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest("approved flag is required"))
		return
	}

	if err := h.accountUsecase.ApproveProvider(c.Request.Context(), providerID, *body.Approved); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusNoContent, nil)
}
