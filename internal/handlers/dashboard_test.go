package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carelog-be/internal/models"
	"carelog-be/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubClientRepo struct {
	clients []models.Client
}

var _ clientLister = (*stubClientRepo)(nil)

func (s *stubClientRepo) List(_ context.Context, _ bool) ([]models.Client, error) {
	return s.clients, nil
}

type stubRecordRepo struct {
	last     []models.LastActivity
	open     []models.ActivityRecord
	window   []models.ActivityRecord
	fromSeen string
}

var _ recordReader = (*stubRecordRepo)(nil)

func (s *stubRecordRepo) LastActivityPerClient(_ context.Context) ([]models.LastActivity, error) {
	return s.last, nil
}

func (s *stubRecordRepo) ListOpenTasks(_ context.Context) ([]models.ActivityRecord, error) {
	return s.open, nil
}

func (s *stubRecordRepo) ListFrom(_ context.Context, from string) ([]models.ActivityRecord, error) {
	s.fromSeen = from
	return s.window, nil
}

func dashboardRouter(clients *stubClientRepo, records *stubRecordRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler(clients, records)
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/dashboard/analytics", h.GetAnalytics)
	return r
}

func TestGetDashboardClientWithOnlyOpenTaskIsOverdue(t *testing.T) {
	clientID := primitive.NewObjectID()
	futureDate := report.CivilDate(time.Now().AddDate(0, 0, 7))

	clients := &stubClientRepo{clients: []models.Client{
		{ID: clientID, Name: "田中", IsActive: true},
	}}
	// No completed contact exists, so the repository reports no last
	// activity even though a future-dated task is open.
	records := &stubRecordRepo{
		open: []models.ActivityRecord{
			{ActivityDate: futureDate, ClientID: clientID, Content: "訪問予定"},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	dashboardRouter(clients, records).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 1, resp.TotalClients)
	require.Equal(t, 1, resp.OverdueClients, "a never-visited client counts as overdue")
	require.Len(t, resp.CareStatus, 1)
	require.Equal(t, report.NoRecordSentinel, resp.CareStatus[0].DaysElapsed)
	require.Equal(t, string(report.TierNoData), resp.CareStatus[0].Tier)
	require.True(t, resp.CareStatus[0].IsOverdue)

	require.Len(t, resp.PendingTasks, 1)
	require.Empty(t, resp.OverdueTasks)
}

func TestGetDashboardSortsMostNeglectedFirst(t *testing.T) {
	recent := primitive.NewObjectID()
	neglected := primitive.NewObjectID()
	never := primitive.NewObjectID()

	clients := &stubClientRepo{clients: []models.Client{
		{ID: recent, Name: "最近の利用者", IsActive: true},
		{ID: neglected, Name: "放置された利用者", IsActive: true},
		{ID: never, Name: "未訪問の利用者", IsActive: true},
	}}
	records := &stubRecordRepo{
		last: []models.LastActivity{
			{ClientID: recent, ActivityDate: report.CivilDate(time.Now().AddDate(0, 0, -3)), StaffName: "山田"},
			{ClientID: neglected, ActivityDate: report.CivilDate(time.Now().AddDate(0, 0, -100)), StaffName: "高橋"},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	dashboardRouter(clients, records).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 3, resp.TotalClients)
	require.Equal(t, 2, resp.OverdueClients)

	require.Len(t, resp.CareStatus, 3)
	require.Equal(t, "未訪問の利用者", resp.CareStatus[0].Name, "the no-record sentinel sorts on top")
	require.Equal(t, "放置された利用者", resp.CareStatus[1].Name)
	require.Equal(t, 100, resp.CareStatus[1].DaysElapsed)
	require.Equal(t, string(report.TierOverdue), resp.CareStatus[1].Tier)
	require.Equal(t, "最近の利用者", resp.CareStatus[2].Name)
	require.Equal(t, 3, resp.CareStatus[2].DaysElapsed)
	require.Equal(t, "山田", resp.CareStatus[2].LastActivityStaffName)
	require.False(t, resp.CareStatus[2].IsOverdue)
}

func TestGetAnalytics(t *testing.T) {
	start := strPtr("09:00")
	end := strPtr("10:30")
	records := &stubRecordRepo{
		window: []models.ActivityRecord{
			{StaffName: "山田", ActivityTypeName: "訪問", ActivityTypeColor: "#ff0000", StartTime: start, EndTime: end},
			{StaffName: "山田", ActivityTypeName: "訪問", ActivityTypeColor: "#ff0000"},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/analytics?range=last_month", nil)
	dashboardRouter(&stubClientRepo{}, records).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	wantStart, _ := report.WindowStart(report.RangeLastMonth, time.Now())
	require.Equal(t, report.CivilDate(wantStart), records.fromSeen, "window start is first of last month")

	var resp models.AnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, report.RangeLastMonth, resp.Range)
	require.Len(t, resp.Summary.ByStaff, 1)
	require.Equal(t, 2, resp.Summary.ByStaff[0].Count)
	require.Equal(t, 90, resp.Summary.ByStaff[0].TotalMinutes)
	require.Len(t, resp.Summary.ByType, 1)
	require.Equal(t, "#ff0000", resp.Summary.ByType[0].Color)
}

func strPtr(s string) *string { return &s }
