package http

import (
	"errors"
	"net/http"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// respondError maps use case errors onto status codes. Anything that is not a
// known domain error is logged and reported as a generic 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case entity.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case errors.Is(err, entity.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, entity.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		var depErr *entity.DependencyError
		if errors.As(err, &depErr) {
			log.Error("%s failed: %v", depErr.Op, depErr.Err)
		} else {
			log.Error("Request failed: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
	}
}
