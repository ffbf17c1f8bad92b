package handlers

import (
	"net/http"

	"carelog-be/internal/models"
	"carelog-be/internal/report"
	"carelog-be/internal/repository"

	"github.com/gin-gonic/gin"
)

// SettingsHandler manages the staff and activity type masters.
type SettingsHandler struct {
	staffRepo *repository.StaffRepository
	typeRepo  *repository.ActivityTypeRepository
}

func NewSettingsHandler(staffRepo *repository.StaffRepository, typeRepo *repository.ActivityTypeRepository) *SettingsHandler {
	return &SettingsHandler{
		staffRepo: staffRepo,
		typeRepo:  typeRepo,
	}
}

// ListStaff godoc
// @Summary List staff members
// @Tags settings
// @Security ApiKeyAuth
// @Param includeInactive query bool false "Include deactivated staff"
// @Success 200 {array} models.Staff
// @Failure 500 {object} models.ErrorResponse
// @Router /settings/staff [get]
func (h *SettingsHandler) ListStaff(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	staff, err := h.staffRepo.List(c.Request.Context(), !includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load staff",
		})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff godoc
// @Summary Create a staff member
// @Tags settings
// @Security ApiKeyAuth
// @Param staff body models.CreateStaffRequest true "Staff"
// @Success 201 {object} models.Staff
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /settings/staff [post]
func (h *SettingsHandler) CreateStaff(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	staff := &models.Staff{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: true,
	}
	if err := h.staffRepo.Create(c.Request.Context(), staff); err != nil {
		if repository.IsDuplicateKey(err) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "staff_exists",
				Message: "A staff member with this email already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create staff member",
		})
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// SetStaffActive godoc
// @Summary Activate or deactivate a staff member
// @Tags settings
// @Security ApiKeyAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /settings/staff/{id}/active [patch]
func (h *SettingsHandler) SetStaffActive(c *gin.Context) {
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

	if err := h.staffRepo.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Failed to update staff member",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member updated"})
}

// ListActivityTypes godoc
// @Summary List activity types
// @Tags settings
// @Security ApiKeyAuth
// @Param includeInactive query bool false "Include deactivated types"
// @Success 200 {array} models.ActivityType
// @Failure 500 {object} models.ErrorResponse
// @Router /settings/activity-types [get]
func (h *SettingsHandler) ListActivityTypes(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	types, err := h.typeRepo.List(c.Request.Context(), !includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load activity types",
		})
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateActivityType godoc
// @Summary Create an activity type
// @Tags settings
// @Security ApiKeyAuth
// @Param type body models.CreateActivityTypeRequest true "Activity type"
// @Success 201 {object} models.ActivityType
// @Failure 400 {object} models.ErrorResponse
// @Router /settings/activity-types [post]
func (h *SettingsHandler) CreateActivityType(c *gin.Context) {
	var req models.CreateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	color := req.Color
	if color == "" {
		color = report.DefaultTypeColor
	}

	at := &models.ActivityType{
		Name:     req.Name,
		Color:    color,
		IsActive: true,
	}
	if err := h.typeRepo.Create(c.Request.Context(), at); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create activity type",
		})
		return
	}
	c.JSON(http.StatusCreated, at)
}

// SetActivityTypeActive godoc
// @Summary Activate or deactivate an activity type
// @Tags settings
// @Security ApiKeyAuth
// @Param id path string true "Activity type ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /settings/activity-types/{id}/active [patch]
func (h *SettingsHandler) SetActivityTypeActive(c *gin.Context) {
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

	if err := h.typeRepo.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Failed to update activity type",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity type updated"})
}
