package middleware

import (
	"net/http"

	"carelog-be/config"
	"carelog-be/internal/models"

	"github.com/gin-gonic/gin"
)

// Maintenance rejects every request except the health check while the server
// is in maintenance mode.
func Maintenance(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MaintenanceMode && c.Request.URL.Path != "/api/health" {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:   "maintenance",
				Message: "The service is temporarily down for maintenance",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
