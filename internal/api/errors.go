package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// writeDBError maps persistence failures onto the response envelope.
// Duplicate-key means a uniqueness rule fired (409), record-not-found
// means an unknown id (404), everything else is logged server-side and
// returned as a generic 500.
func writeDBError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Duplicate submission"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("database error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

// writeValidationError returns 400 with per-field messages.
func writeValidationError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Validation failed",
		"details": details,
	})
}
