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
)

// VehicleHandler handles customer vehicle endpoints
type VehicleHandler struct {
	vehicleUsecase *usecases.VehicleUsecase
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleUsecase *usecases.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{vehicleUsecase: vehicleUsecase}
}

// AddVehicle registers a vehicle for the caller
// POST /api/v1/vehicles
func (h *VehicleHandler) AddVehicle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.AddVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	vehicle, err := h.vehicleUsecase.AddVehicle(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, vehicle)
}

// ListVehicles lists the caller's vehicles
// GET /api/v1/vehicles
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	vehicles, err := h.vehicleUsecase.ListVehicles(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, vehicles)
}

// RemoveVehicle deletes one of the caller's vehicles
// DELETE /api/v1/vehicles/:id
func (h *VehicleHandler) RemoveVehicle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid vehicle ID"))
		return
	}

	if err := h.vehicleUsecase.RemoveVehicle(c.Request.Context(), userID, vehicleID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusNoContent, nil)
}
