package handlers

import (
	"errors"
	"log"
	"net/http"

	"attendance_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps store errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrEmptyQueue), errors.Is(err, store.ErrEmptyUndo):
		c.JSON(http.StatusConflict, gin.H{"warning": err.Error()})
	case errors.Is(err, store.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotPersisted):
		respondNotPersisted(c, err, nil)
	default:
		log.Printf("Request %s failed: %v", c.GetString("requestID"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondNotPersisted tells the caller the change is live but was not
// saved, so a retry is not needed (and would be rejected as a duplicate).
func respondNotPersisted(c *gin.Context, err error, result gin.H) {
	log.Printf("Request %s applied but not persisted: %v", c.GetString("requestID"), err)
	body := gin.H{
		"error":     "Change applied but roster could not be saved",
		"applied":   true,
		"persisted": false,
	}
	for k, v := range result {
		body[k] = v
	}
	c.JSON(http.StatusInternalServerError, body)
}

// respondBindError reports request body problems, listing failed
// validation tags per field when the validator produced them.
func respondBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
}
