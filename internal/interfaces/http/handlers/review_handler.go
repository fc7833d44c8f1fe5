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

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewUsecase *usecases.ReviewUsecase
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUsecase *usecases.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// CreateReview files a review for a completed request
// POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	review, err := h.reviewUsecase.CreateReview(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, review)
}

// ListProviderReviews lists a provider's approved reviews
// GET /api/v1/providers/:id/reviews?page=&limit=
func (h *ReviewHandler) ListProviderReviews(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid provider ID"))
		return
	}
	page, limit := paginationQuery(c)

	reviews, total, err := h.reviewUsecase.ListProviderReviews(c.Request.Context(), providerID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, reviews, utils.CalculateMeta(int64(total), page, limit))
}
