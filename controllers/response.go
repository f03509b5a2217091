package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/kendall-kelly/freelance-api/apperrors"
	"github.com/kendall-kelly/freelance-api/logger"
	"go.uber.org/zap"
)

func init() {
	// Request bodies may only carry the fields their request struct declares
	binding.EnableDecoderDisallowUnknownFields = true
}

// errorResponse writes the standard failure envelope
func errorResponse(c *gin.Context, status int, code, message string, details ...string) {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if len(details) > 0 && details[0] != "" {
		body["details"] = details[0]
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   body,
	})
}

// messageResponse writes a success envelope carrying a confirmation message
func messageResponse(c *gin.Context, message string, data interface{}) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// parseID reads the :id path parameter. It writes a 400 and returns false when
// the parameter is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		errorResponse(c, http.StatusBadRequest, "INVALID_ID", "ID must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the request body into req. It writes a 400 and returns false
// when the body is malformed, carries unknown fields or misses a required field.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", err.Error())
		return false
	}
	return true
}

// storeErrorResponse maps a store error onto an HTTP status
func storeErrorResponse(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", resource+" not found")
	case errors.Is(err, apperrors.ErrBadRequest):
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		errorResponse(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		logger.Log.Error("Database operation failed",
			zap.String("resource", resource),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to access "+resource+" data")
	}
}
