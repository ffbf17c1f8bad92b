package models

// CalendarDay is one cell of the 42-cell month grid. Lead and trail cells
// from adjacent months never carry activities.
type CalendarDay struct {
	Date           string           `json:"date"` // YYYY-MM-DD
	IsCurrentMonth bool             `json:"isCurrentMonth"`
	Activities     []ActivityRecord `json:"activities"`
}

// CalendarDaySummary is the compact per-day form used by the mini calendar.
type CalendarDaySummary struct {
	Date        string   `json:"date"`
	Count       int      `json:"count"`
	Colors      []string `json:"colors,omitempty"`
	ClientNames []string `json:"clientNames,omitempty"`
}

// StaffMetric - activity count and total duration for one staff member
type StaffMetric struct {
	Name         string `json:"name"`
	Count        int    `json:"count"`
	TotalMinutes int    `json:"totalMinutes"`
}

// TypeMetric - activity count and total duration for one activity type
type TypeMetric struct {
	Name         string `json:"name"`
	Count        int    `json:"count"`
	TotalMinutes int    `json:"totalMinutes"`
	Color        string `json:"color"`
}

// ActivitySummary - chart series for the analytics tab
type ActivitySummary struct {
	ByStaff []StaffMetric `json:"byStaff"`
	ByType  []TypeMetric  `json:"byType"`
}

type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

type CalendarSummaryResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Days  []CalendarDaySummary `json:"days"`
}

type AnalyticsResponse struct {
	Range   string          `json:"range"` // "this_month", "last_month", "last_3_months"
	Summary ActivitySummary `json:"summary"`
}

type DashboardResponse struct {
	TotalClients   int                `json:"totalClients"`
	OverdueClients int                `json:"overdueClients"`
	CareStatus     []ClientCareStatus `json:"careStatus"`
	OverdueTasks   []ActivityRecord   `json:"overdueTasks"`
	PendingTasks   []ActivityRecord   `json:"pendingTasks"`
}

// ClientDetailResponse splits a client's history into open tasks and
// completed records for the detail page.
type ClientDetailResponse struct {
	Client       *Client          `json:"client"`
	OverdueTasks []ActivityRecord `json:"overdueTasks"`
	PendingTasks []ActivityRecord `json:"pendingTasks"`
	Completed    []ActivityRecord `json:"completed"`
}
