package handlers

import (
	"net/http"
	"time"

	"carelog-be/internal/models"
	"carelog-be/internal/report"
	"carelog-be/internal/repository"
	"carelog-be/internal/services"
	"carelog-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sahilm/fuzzy"
)

type ClientHandler struct {
	clientRepo *repository.ClientRepository
	recordRepo *repository.RecordRepository
	masterSync *services.MasterSyncService
}

func NewClientHandler(clientRepo *repository.ClientRepository, recordRepo *repository.RecordRepository, masterSync *services.MasterSyncService) *ClientHandler {
	return &ClientHandler{
		clientRepo: clientRepo,
		recordRepo: recordRepo,
		masterSync: masterSync,
	}
}

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Security ApiKeyAuth
// @Param includeInactive query bool false "Include deactivated clients"
// @Success 200 {array} models.Client
// @Failure 500 {object} models.ErrorResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	clients, err := h.clientRepo.List(c.Request.Context(), !includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load clients",
		})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Security ApiKeyAuth
// @Param client body models.CreateClientRequest true "Client"
// @Success 201 {object} models.Client
// @Failure 400 {object} models.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	client := &models.Client{
		Name:      req.Name,
		MasterUID: req.MasterUID,
		IsActive:  true,
	}
	if err := h.clientRepo.Create(c.Request.Context(), client); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create client",
		})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// SetClientActive godoc
// @Summary Activate or deactivate a client
// @Tags clients
// @Security ApiKeyAuth
// @Param id path string true "Client ID"
// @Param body body map[string]bool true "{\"isActive\": false}"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /clients/{id}/active [patch]
func (h *ClientHandler) SetClientActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := h.clientRepo.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Failed to update client",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client updated"})
}

// GetClientDetail godoc
// @Summary Get a client with their activity history
// @Description Returns the client plus their records split into overdue tasks, pending tasks, and completed history
// @Tags clients
// @Security ApiKeyAuth
// @Param id path string true "Client ID"
// @Success 200 {object} models.ClientDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClientDetail(c *gin.Context) {
	ctx := c.Request.Context()

	client, err := h.clientRepo.FindByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Client not found",
		})
		return
	}

	records, err := h.recordRepo.ListByClient(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load records",
		})
		return
	}

	partition := report.Partition(records, time.Now())
	c.JSON(http.StatusOK, models.ClientDetailResponse{
		Client:       client,
		OverdueTasks: partition.Overdue,
		PendingTasks: partition.Pending,
		Completed:    partition.Completed,
	})
}

// SearchClients godoc
// @Summary Fuzzy-search clients by name
// @Description Matches case- and character-width-insensitively, so half-width katakana input finds full-width names
// @Tags clients
// @Security ApiKeyAuth
// @Param q query string true "Search query"
// @Success 200 {array} models.ClientSearchResult
// @Failure 400 {object} models.ErrorResponse
// @Router /clients/search [get]
func (h *ClientHandler) SearchClients(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "q parameter is required",
		})
		return
	}

	clients, err := h.clientRepo.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load clients",
		})
		return
	}

	names := make([]string, len(clients))
	for i, client := range clients {
		names[i] = utils.NormalizeForSearch(client.Name)
	}

	matches := fuzzy.Find(utils.NormalizeForSearch(query), names)
	results := make([]models.ClientSearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, models.ClientSearchResult{
			Client: &clients[m.Index],
			Score:  m.Score,
		})
	}
	c.JSON(http.StatusOK, results)
}

// SyncClients godoc
// @Summary Sync clients from the master database
// @Description Pulls the user roster from the master database API and upserts clients by master UID
// @Tags clients
// @Security ApiKeyAuth
// @Success 200 {object} map[string]int
// @Failure 502 {object} models.ErrorResponse
// @Router /clients/sync [post]
func (h *ClientHandler) SyncClients(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.masterSync.FetchUsers(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "master_sync_failed",
			Message: err.Error(),
		})
		return
	}

	created, updated := 0, 0
	for _, u := range users {
		if u.UID == "" || u.Name == "" {
			continue
		}
		wasCreated, err := h.clientRepo.UpsertByMasterUID(ctx, u.UID, u.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "server_error",
				Message: "Failed to upsert client",
			})
			return
		}
		if wasCreated {
			created++
		} else {
			updated++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"updated": updated,
	})
}
