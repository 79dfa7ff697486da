package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// writeError maps service errors onto HTTP responses
func writeError(c *gin.Context, err error) {
	var fieldErr *models.InvalidFieldError
	switch {
	case errors.As(err, &fieldErr):
		badRequest(c, err.Error())
	case errors.Is(err, services.ErrTickerNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

// optionalDate parses an optional YYYY-MM-DD or RFC3339 query value
func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := models.ParseFlexibleDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
