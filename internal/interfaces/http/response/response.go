package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "servicehub.backend/internal/domain/errors"
	"servicehub.backend/pkg/utils"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Paginated sends a list response with pagination metadata
func Paginated(c *gin.Context, status int, data interface{}, meta utils.PaginationMeta) {
	c.JSON(status, gin.H{
		"data": data,
		"meta": meta,
	})
}

// Error sends an error response. AppErrors carry their own HTTP status;
// anything else is treated as an internal error.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	body := gin.H{"message": appErr.Message}
	if kind := domainerrors.Kind(appErr); kind != nil {
		body["error"] = kind.Error()
	}
	c.JSON(appErr.Code, body)
}
