package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"carelog-be/internal/models"
	"carelog-be/internal/report"

	"github.com/gin-gonic/gin"
)

type clientLister interface {
	List(ctx context.Context, activeOnly bool) ([]models.Client, error)
}

type recordReader interface {
	LastActivityPerClient(ctx context.Context) ([]models.LastActivity, error)
	ListOpenTasks(ctx context.Context) ([]models.ActivityRecord, error)
	ListFrom(ctx context.Context, from string) ([]models.ActivityRecord, error)
}

type DashboardHandler struct {
	clientRepo clientLister
	recordRepo recordReader
}

func NewDashboardHandler(clientRepo clientLister, recordRepo recordReader) *DashboardHandler {
	return &DashboardHandler{
		clientRepo: clientRepo,
		recordRepo: recordRepo,
	}
}

// GetDashboard godoc
// @Summary Get the care status dashboard
// @Description Returns per-client elapsed days since last contact, the overdue count, and open tasks split into overdue and pending
// @Tags dashboard
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now()

	clients, err := h.clientRepo.List(ctx, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load clients",
		})
		return
	}

	lastActivities, err := h.recordRepo.LastActivityPerClient(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load last activities",
		})
		return
	}
	lastByClient := make(map[string]models.LastActivity, len(lastActivities))
	for _, la := range lastActivities {
		lastByClient[la.ClientID.Hex()] = la
	}

	careStatus := make([]models.ClientCareStatus, 0, len(clients))
	overdueClients := 0
	for _, client := range clients {
		status := models.ClientCareStatus{
			ID:        client.ID.Hex(),
			Name:      client.Name,
			MasterUID: client.MasterUID,
		}

		var last *time.Time
		if la, ok := lastByClient[client.ID.Hex()]; ok {
			if t, err := time.ParseInLocation("2006-01-02", la.ActivityDate, time.Local); err == nil {
				last = &t
				status.LastActivityDate = la.ActivityDate
				status.LastActivityStaffName = la.StaffName
			}
		}

		days := report.DaysElapsed(last, now)
		status.DaysElapsed = days
		status.Tier = string(report.ElapsedTier(days))
		status.IsOverdue = report.IsOverdue(days)
		if status.IsOverdue {
			overdueClients++
		}
		careStatus = append(careStatus, status)
	}

	// Most neglected clients first. The no-record sentinel sorts on top.
	sort.SliceStable(careStatus, func(i, j int) bool {
		return careStatus[i].DaysElapsed > careStatus[j].DaysElapsed
	})

	openTasks, err := h.recordRepo.ListOpenTasks(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load open tasks",
		})
		return
	}
	partition := report.Partition(openTasks, now)

	c.JSON(http.StatusOK, models.DashboardResponse{
		TotalClients:   len(clients),
		OverdueClients: overdueClients,
		CareStatus:     careStatus,
		OverdueTasks:   partition.Overdue,
		PendingTasks:   partition.Pending,
	})
}

// GetAnalytics godoc
// @Summary Get activity analytics
// @Description Aggregates records in a calendar-month-aligned window by staff and by activity type
// @Tags dashboard
// @Security ApiKeyAuth
// @Param range query string false "Window: this_month, last_month, last_3_months" default(this_month)
// @Success 200 {object} models.AnalyticsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/analytics [get]
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	start, rangeKey := report.WindowStart(c.Query("range"), time.Now())

	records, err := h.recordRepo.ListFrom(c.Request.Context(), report.CivilDate(start))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load records",
		})
		return
	}

	c.JSON(http.StatusOK, models.AnalyticsResponse{
		Range:   rangeKey,
		Summary: report.Aggregate(records),
	})
}
