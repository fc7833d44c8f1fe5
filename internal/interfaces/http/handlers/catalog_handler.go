package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub.backend/internal/domain/entities"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/internal/interfaces/http/middleware"
	"servicehub.backend/internal/interfaces/http/response"
	"servicehub.backend/internal/usecases"
	"servicehub.backend/pkg/utils"
)

// CatalogHandler handles category and service catalog endpoints
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListCategories lists active service categories
// GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUsecase.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// SearchServices searches available services
// GET /api/v1/services?search=&categoryId=&page=&limit=
func (h *CatalogHandler) SearchServices(c *gin.Context) {
	filter := entities.ServiceFilter{Search: c.Query("search")}
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid category ID"))
			return
		}
		filter.CategoryID = &categoryID
	}
	page, limit := paginationQuery(c)

	services, total, err := h.catalogUsecase.SearchServices(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, services, utils.CalculateMeta(int64(total), page, limit))
}

// GetService returns one service
// GET /api/v1/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service ID"))
		return
	}

	service, err := h.catalogUsecase.GetService(c.Request.Context(), serviceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}

// CreateService adds a service to the caller's catalog
// POST /api/v1/provider/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	service, err := h.catalogUsecase.CreateService(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, service)
}

// UpdateService edits one of the caller's services
// PATCH /api/v1/provider/services/:id
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service ID"))
		return
	}

	var input entities.UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	service, err := h.catalogUsecase.UpdateService(c.Request.Context(), userID, serviceID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}

// DeleteService removes one of the caller's services
// DELETE /api/v1/provider/services/:id
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service ID"))
		return
	}

	if err := h.catalogUsecase.DeleteService(c.Request.Context(), userID, serviceID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusNoContent, nil)
}

// ListOwnServices lists the caller's full catalog
// GET /api/v1/provider/services
func (h *CatalogHandler) ListOwnServices(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	services, err := h.catalogUsecase.ListOwnServices(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, services)
}

func paginationQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
