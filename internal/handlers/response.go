package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eprocure-backend/internal/models"
)

// apiResponse is the uniform envelope wrapping every API response.
type apiResponse struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId"`
	Timestamp int64       `json:"timestamp"`
}

func respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, apiResponse{
		Status:    code,
		Message:   message,
		Data:      data,
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
	})
}

func respondError(c *gin.Context, code int, message string) {
	respond(c, code, message, nil)
}

// handleError maps service errors onto the envelope and an HTTP status.
// Unknown failures become an opaque 500; no internal detail leaks out.
func handleError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidProjectData):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &validationErr):
		respond(c, http.StatusBadRequest, "Validation failed", validationErr.Fields)
	default:
		log.Printf("unexpected error: %v", err)
		respondError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
