package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neo11221/wenhong-cramschool/internal/models"
)

// abortWithError maps ledger errors onto HTTP status codes. Unknown
// errors are reported as 500s without leaking internals.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrProfileNotFound),
		errors.Is(err, models.ErrRedemptionNotFound),
		errors.Is(err, models.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientPoints),
		errors.Is(err, models.ErrOutOfStock):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
