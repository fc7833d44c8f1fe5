package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/interfaces/http/response"
	"servicehub.backend/internal/usecases"
)

// DiscoveryHandler handles provider discovery endpoints
type DiscoveryHandler struct {
	discoveryUsecase *usecases.DiscoveryUsecase
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discoveryUsecase *usecases.DiscoveryUsecase) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryUsecase: discoveryUsecase}
}

// DiscoverNearby finds eligible providers near a point
// GET /api/v1/providers/nearby?lat=&lng=&radius=
func (h *DiscoveryHandler) DiscoverNearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.Error(c, domainerrors.InvalidQuery("lat is required and must be a number"))
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		response.Error(c, domainerrors.InvalidQuery("lng is required and must be a number"))
		return
	}

	radius := 0.0
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, domainerrors.InvalidQuery("radius must be a number"))
			return
		}
	}

	providers, err := h.discoveryUsecase.DiscoverNearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, providers)
}
