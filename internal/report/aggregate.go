package report

import (
	"time"

	"carelog-be/internal/models"
)

// DefaultTypeColor is the neutral gray used when an activity type has no
// configured color.
const DefaultTypeColor = "#cccccc"

// Analytics range keys.
const (
	RangeThisMonth   = "this_month"
	RangeLastMonth   = "last_month"
	RangeLast3Months = "last_3_months"
)

// WindowStart returns the calendar-month-aligned start date for an analytics
// range, and the normalized range key. Unknown keys fall back to this_month.
// The window is open-ended toward today; callers query from the start date
// onward.
func WindowStart(rangeKey string, today time.Time) (time.Time, string) {
	year, month, _ := today.Date()
	switch rangeKey {
	case RangeLastMonth:
		return time.Date(year, month-1, 1, 0, 0, 0, 0, today.Location()), RangeLastMonth
	case RangeLast3Months:
		return time.Date(year, month-2, 1, 0, 0, 0, 0, today.Location()), RangeLast3Months
	default:
		return time.Date(year, month, 1, 0, 0, 0, 0, today.Location()), RangeThisMonth
	}
}

// Aggregate rolls a window of records up into per-staff and per-type series.
// A record missing a staff name still contributes to the type series and
// vice versa; a record whose times don't resolve to a duration still counts
// but adds no minutes. Grouping is exact string match on the display name,
// and series keep first-occurrence order.
func Aggregate(records []models.ActivityRecord) models.ActivitySummary {
	staffIdx := make(map[string]int)
	typeIdx := make(map[string]int)
	summary := models.ActivitySummary{
		ByStaff: []models.StaffMetric{},
		ByType:  []models.TypeMetric{},
	}

	for _, r := range records {
		minutes, _ := DurationMinutes(r.StartTime, r.EndTime)

		if r.StaffName != "" {
			i, ok := staffIdx[r.StaffName]
			if !ok {
				i = len(summary.ByStaff)
				staffIdx[r.StaffName] = i
				summary.ByStaff = append(summary.ByStaff, models.StaffMetric{Name: r.StaffName})
			}
			summary.ByStaff[i].Count++
			summary.ByStaff[i].TotalMinutes += minutes
		}

		if r.ActivityTypeName != "" {
			i, ok := typeIdx[r.ActivityTypeName]
			if !ok {
				color := r.ActivityTypeColor
				if color == "" {
					color = DefaultTypeColor
				}
				i = len(summary.ByType)
				typeIdx[r.ActivityTypeName] = i
				summary.ByType = append(summary.ByType, models.TypeMetric{Name: r.ActivityTypeName, Color: color})
			}
			summary.ByType[i].Count++
			summary.ByType[i].TotalMinutes += minutes
		}
	}

	return summary
}
