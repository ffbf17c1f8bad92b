package report

import (
	"testing"
	"time"

	"carelog-be/internal/models"

	"github.com/stretchr/testify/require"
)

func TestWindowStart(t *testing.T) {
	today := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.Local)

	start, key := WindowStart(RangeThisMonth, today)
	require.Equal(t, "2025-03-01", CivilDate(start))
	require.Equal(t, RangeThisMonth, key)

	start, key = WindowStart(RangeLastMonth, today)
	require.Equal(t, "2025-02-01", CivilDate(start))
	require.Equal(t, RangeLastMonth, key)

	start, key = WindowStart(RangeLast3Months, today)
	require.Equal(t, "2025-01-01", CivilDate(start))
	require.Equal(t, RangeLast3Months, key)

	start, key = WindowStart("bogus", today)
	require.Equal(t, "2025-03-01", CivilDate(start))
	require.Equal(t, RangeThisMonth, key)
}

func TestWindowStartYearRollover(t *testing.T) {
	today := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.Local)

	start, _ := WindowStart(RangeLastMonth, today)
	require.Equal(t, "2024-12-01", CivilDate(start))

	start, _ = WindowStart(RangeLast3Months, today)
	require.Equal(t, "2024-11-01", CivilDate(start))
}

func TestAggregate(t *testing.T) {
	records := []models.ActivityRecord{
		{StaffName: "山田", ActivityTypeName: "訪問", ActivityTypeColor: "#ff0000", StartTime: strPtr("09:00"), EndTime: strPtr("10:00")},
		{StaffName: "山田", ActivityTypeName: "電話", StartTime: strPtr("13:00"), EndTime: strPtr("13:15")},
		{StaffName: "高橋", ActivityTypeName: "訪問", ActivityTypeColor: "#ff0000", StartTime: strPtr("14:00"), EndTime: strPtr("15:30")},
		{StaffName: "高橋", ActivityTypeName: "訪問"},
	}

	summary := Aggregate(records)

	require.Len(t, summary.ByStaff, 2)
	require.Equal(t, "山田", summary.ByStaff[0].Name, "series keep first-occurrence order")
	require.Equal(t, 2, summary.ByStaff[0].Count)
	require.Equal(t, 75, summary.ByStaff[0].TotalMinutes)
	require.Equal(t, "高橋", summary.ByStaff[1].Name)
	require.Equal(t, 2, summary.ByStaff[1].Count)
	require.Equal(t, 90, summary.ByStaff[1].TotalMinutes, "records without times count but add no minutes")

	require.Len(t, summary.ByType, 2)
	require.Equal(t, "訪問", summary.ByType[0].Name)
	require.Equal(t, 3, summary.ByType[0].Count)
	require.Equal(t, 150, summary.ByType[0].TotalMinutes)
	require.Equal(t, "#ff0000", summary.ByType[0].Color)
	require.Equal(t, "電話", summary.ByType[1].Name)
	require.Equal(t, DefaultTypeColor, summary.ByType[1].Color)
}

func TestAggregateMissingDimensions(t *testing.T) {
	records := []models.ActivityRecord{
		{ActivityTypeName: "訪問", StartTime: strPtr("09:00"), EndTime: strPtr("09:30")},
		{StaffName: "山田", StartTime: strPtr("10:00"), EndTime: strPtr("10:30")},
	}

	summary := Aggregate(records)

	require.Len(t, summary.ByStaff, 1, "record without a staff name still feeds the type series")
	require.Equal(t, "山田", summary.ByStaff[0].Name)
	require.Len(t, summary.ByType, 1)
	require.Equal(t, "訪問", summary.ByType[0].Name)
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil)
	require.NotNil(t, summary.ByStaff)
	require.NotNil(t, summary.ByType)
	require.Empty(t, summary.ByStaff)
	require.Empty(t, summary.ByType)
}
