package report

import (
	"fmt"
	"time"

	"carelog-be/internal/models"
)

const (
	// GridCells is the fixed month-view size: 6 weeks of 7 days. Months that
	// fit in 4 or 5 rows are still padded to 6 for layout uniformity.
	GridCells = 42

	// WeekStart is the day-of-week index the first grid column represents
	// (0 = Sunday).
	WeekStart = 0
)

// CivilDate formats a date from its local calendar fields. The grid matches
// records by string equality on this form; building it from the civil fields
// rather than a UTC serialization avoids the off-by-one-day drift that bites
// near midnight in non-UTC zones.
func CivilDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// MonthBounds returns the civil first and last dates of a month, for use as
// an inclusive storage query window.
func MonthBounds(year int, month time.Month) (first, last string) {
	f := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	l := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	return CivilDate(f), CivilDate(l)
}

// MonthGrid buckets records into the 42-cell calendar grid for a month.
// Lead and trail cells belong to the adjacent months and stay empty; each
// current-month cell carries the records whose ActivityDate equals that
// cell's date, preserving input order. Records with an empty or malformed
// date match no cell and are silently dropped.
func MonthGrid(year int, month time.Month, records []models.ActivityRecord) []models.CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	lead := (int(first.Weekday()) - WeekStart + 7) % 7

	days := make([]models.CalendarDay, 0, GridCells)
	for i := lead; i > 0; i-- {
		days = append(days, models.CalendarDay{
			Date:       CivilDate(time.Date(year, month, 1-i, 0, 0, 0, 0, time.Local)),
			Activities: []models.ActivityRecord{},
		})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := CivilDate(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		cell := models.CalendarDay{
			Date:           date,
			IsCurrentMonth: true,
			Activities:     []models.ActivityRecord{},
		}
		for _, r := range records {
			if r.ActivityDate == date {
				cell.Activities = append(cell.Activities, r)
			}
		}
		days = append(days, cell)
	}
	for day := 1; len(days) < GridCells; day++ {
		days = append(days, models.CalendarDay{
			Date:       CivilDate(time.Date(year, month+1, day, 0, 0, 0, 0, time.Local)),
			Activities: []models.ActivityRecord{},
		})
	}
	return days
}

// MonthSummary condenses the current-month cells of the grid into per-day
// counts with a few type colors and client names, for the mini calendar.
func MonthSummary(year int, month time.Month, records []models.ActivityRecord) []models.CalendarDaySummary {
	const (
		maxColors = 2
		maxNames  = 5
	)

	var out []models.CalendarDaySummary
	for _, day := range MonthGrid(year, month, records) {
		if !day.IsCurrentMonth {
			continue
		}
		summary := models.CalendarDaySummary{Date: day.Date, Count: len(day.Activities)}
		for _, r := range day.Activities {
			if len(summary.Colors) < maxColors {
				color := r.ActivityTypeColor
				if color == "" {
					color = DefaultTypeColor
				}
				summary.Colors = append(summary.Colors, color)
			}
			if len(summary.ClientNames) < maxNames && r.ClientName != "" {
				summary.ClientNames = append(summary.ClientNames, r.ClientName)
			}
		}
		out = append(out, summary)
	}
	return out
}
