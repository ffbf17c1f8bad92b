package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carelog-be/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func maintenanceRouter(maintenance bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Maintenance(&config.Config{MaintenanceMode: maintenance}))
	r.GET("/api/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/api/clients", func(c *gin.Context) { c.JSON(200, gin.H{}) })
	return r
}

func TestMaintenanceBlocksRequests(t *testing.T) {
	r := maintenanceRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMaintenanceAllowsHealthCheck(t *testing.T) {
	r := maintenanceRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceOffPassesThrough(t *testing.T) {
	r := maintenanceRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
