package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/interfaces/http/middleware"
	"servicehub.backend/internal/interfaces/http/response"
	"servicehub.backend/internal/usecases"
)

// AuthHandler handles registration, login and profile endpoints
type AuthHandler struct {
	accountUsecase *usecases.AccountUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUsecase *usecases.AccountUsecase) *AuthHandler {
	return &AuthHandler{accountUsecase: accountUsecase}
}

// RegisterCustomer registers a customer account
// POST /api/v1/auth/register/customer
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var input entities.RegisterCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.accountUsecase.RegisterCustomer(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// RegisterProvider registers a provider account
// POST /api/v1/auth/register/provider
func (h *AuthHandler) RegisterProvider(c *gin.Context) {
	var input entities.RegisterProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.accountUsecase.RegisterProvider(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// Login authenticates a user
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.accountUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// GetMe returns the caller's account
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	user, err := h.accountUsecase.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// GetCustomerProfile returns the caller's customer profile
// GET /api/v1/customers/me
func (h *AuthHandler) GetCustomerProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	profile, err := h.accountUsecase.GetCustomerProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// GetProviderProfile returns the caller's provider profile
// GET /api/v1/providers/me
func (h *AuthHandler) GetProviderProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	profile, err := h.accountUsecase.GetProviderProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
