package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/freelance-api/store"
)

// SystemController serves health and database status endpoints
type SystemController struct {
	store *store.Store
}

// NewSystemController creates a controller that reports on st
func NewSystemController(st *store.Store) *SystemController {
	return &SystemController{store: st}
}

// HealthCheck handles GET /health
func (sc *SystemController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Freelance API is running",
	})
}

// DatabaseStatus handles GET /database/status - checks connectivity and lists tables
func (sc *SystemController) DatabaseStatus(c *gin.Context) {
	// Ping the database to verify connection
	if err := sc.store.Ping(c.Request.Context()); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_CONNECTION_ERROR", "Database connection failed")
		return
	}

	tables, err := sc.store.Tables()
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_QUERY_ERROR", "Failed to query tables")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
