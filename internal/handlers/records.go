package handlers

import (
	"net/http"
	"time"

	"carelog-be/internal/models"
	"carelog-be/internal/repository"
	"carelog-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RecordHandler struct {
	recordRepo *repository.RecordRepository
}

func NewRecordHandler(recordRepo *repository.RecordRepository) *RecordHandler {
	return &RecordHandler{recordRepo: recordRepo}
}

// validDate accepts only the canonical zero-padded YYYY-MM-DD form; storage
// queries compare dates lexically, so unpadded variants must not get in.
func validDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// CreateRecord godoc
// @Summary Create an activity record
// @Description Creates a completed visit record or an open task for a client
// @Tags records
// @Security ApiKeyAuth
// @Param record body models.CreateRecordRequest true "Record"
// @Success 201 {object} models.ActivityRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req models.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if !validDate(req.ActivityDate) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "activityDate must be YYYY-MM-DD",
		})
		return
	}

	clientID, err := primitive.ObjectIDFromHex(req.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid client ID",
		})
		return
	}
	typeID, err := primitive.ObjectIDFromHex(req.ActivityTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid activity type ID",
		})
		return
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	record := &models.ActivityRecord{
		ActivityDate:   req.ActivityDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TaskTime:       req.TaskTime,
		Content:        utils.SanitizeContent(req.Content),
		ClientID:       clientID,
		ActivityTypeID: typeID,
		IsCompleted:    &completed,
	}

	if req.StaffID != "" {
		staffID, err := primitive.ObjectIDFromHex(req.StaffID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "Invalid staff ID",
			})
			return
		}
		record.StaffID = &staffID
	}

	ctx := c.Request.Context()
	if err := h.recordRepo.Insert(ctx, record); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create record",
		})
		return
	}

	record.ResolveCompleted()
	c.JSON(http.StatusCreated, record)
}

// GetRecord godoc
// @Summary Get a single activity record
// @Tags records
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.ActivityRecord
// @Failure 404 {object} models.ErrorResponse
// @Router /records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	record, err := h.recordRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Record not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid record ID",
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateRecord godoc
// @Summary Update an activity record
// @Tags records
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Param record body models.UpdateRecordRequest true "Fields to update"
// @Success 200 {object} models.ActivityRecord
// @Failure 400 {object} models.ErrorResponse
// @Router /records/{id} [put]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var req models.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	updates := bson.M{}
	if req.ActivityDate != "" {
		if !validDate(req.ActivityDate) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "activityDate must be YYYY-MM-DD",
			})
			return
		}
		updates["activityDate"] = req.ActivityDate
	}
	if req.StaffID != "" {
		staffID, err := primitive.ObjectIDFromHex(req.StaffID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "Invalid staff ID",
			})
			return
		}
		updates["staffId"] = staffID
	}
	if req.ActivityTypeID != "" {
		typeID, err := primitive.ObjectIDFromHex(req.ActivityTypeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "Invalid activity type ID",
			})
			return
		}
		updates["activityTypeId"] = typeID
	}
	if req.Content != nil {
		updates["content"] = utils.SanitizeContent(*req.Content)
	}
	if req.StartTime != nil {
		updates["startTime"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["endTime"] = *req.EndTime
	}
	if req.TaskTime != nil {
		updates["taskTime"] = *req.TaskTime
	}
	if req.Completed != nil {
		updates["isCompleted"] = *req.Completed
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "No fields to update",
		})
		return
	}

	ctx := c.Request.Context()
	if err := h.recordRepo.Update(ctx, c.Param("id"), updates); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to update record",
		})
		return
	}

	record, err := h.recordRepo.FindByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Record not found",
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteRecord godoc
// @Summary Delete an activity record
// @Tags records
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	if err := h.recordRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to delete record",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}

// CompleteTask godoc
// @Summary Mark an open task as completed
// @Tags records
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.ActivityRecord
// @Failure 500 {object} models.ErrorResponse
// @Router /records/{id}/complete [post]
func (h *RecordHandler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.recordRepo.Complete(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to complete task",
		})
		return
	}

	record, err := h.recordRepo.FindByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Record not found",
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

// AssignTask godoc
// @Summary Assign a task to a staff member
// @Tags records
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Param assignment body models.AssignTaskRequest true "Assignment"
// @Success 200 {object} models.ActivityRecord
// @Failure 400 {object} models.ErrorResponse
// @Router /records/{id}/assign [post]
func (h *RecordHandler) AssignTask(c *gin.Context) {
	var req models.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	if err := h.recordRepo.AssignStaff(ctx, c.Param("id"), req.StaffID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Failed to assign task",
		})
		return
	}

	record, err := h.recordRepo.FindByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Record not found",
		})
		return
	}
	c.JSON(http.StatusOK, record)
}
