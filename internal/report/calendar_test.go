package report

import (
	"testing"
	"time"

	"carelog-be/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCivilDate(t *testing.T) {
	require.Equal(t, "2025-03-01", CivilDate(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)))
	require.Equal(t, "2025-03-01", CivilDate(time.Date(2025, time.March, 1, 23, 59, 59, 0, time.Local)))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2025, time.March)
	require.Equal(t, "2025-03-01", first)
	require.Equal(t, "2025-03-31", last)

	first, last = MonthBounds(2024, time.February)
	require.Equal(t, "2024-02-01", first)
	require.Equal(t, "2024-02-29", last)
}

func TestMonthGridMarch2025(t *testing.T) {
	// March 1st 2025 is a Saturday, so the grid leads with six February
	// cells and trails with five April cells.
	records := []models.ActivityRecord{
		{ActivityDate: "2025-03-10", Content: "first"},
		{ActivityDate: "2025-03-10", Content: "second"},
		{ActivityDate: "2025-03-31", Content: "month end"},
		{ActivityDate: "2025-02-28", Content: "previous month"},
		{ActivityDate: "", Content: "no date"},
		{ActivityDate: "bad-date", Content: "malformed"},
	}

	days := MonthGrid(2025, time.March, records)
	require.Len(t, days, GridCells)

	require.Equal(t, "2025-02-23", days[0].Date)
	require.False(t, days[0].IsCurrentMonth)
	require.Equal(t, "2025-02-28", days[5].Date)
	require.Empty(t, days[5].Activities, "lead cells carry no activities")

	require.Equal(t, "2025-03-01", days[6].Date)
	require.True(t, days[6].IsCurrentMonth)

	march10 := days[6+9]
	require.Equal(t, "2025-03-10", march10.Date)
	require.Len(t, march10.Activities, 2)
	require.Equal(t, "first", march10.Activities[0].Content)
	require.Equal(t, "second", march10.Activities[1].Content)

	march31 := days[6+30]
	require.Equal(t, "2025-03-31", march31.Date)
	require.Len(t, march31.Activities, 1)

	require.Equal(t, "2025-04-01", days[37].Date)
	require.False(t, days[41].IsCurrentMonth)
	require.Equal(t, "2025-04-05", days[41].Date)

	placed := 0
	for _, d := range days {
		placed += len(d.Activities)
	}
	require.Equal(t, 3, placed, "out-of-month and malformed dates are dropped")
}

func TestMonthGridEmptyCellsNotNil(t *testing.T) {
	days := MonthGrid(2025, time.June, nil)
	require.Len(t, days, GridCells)
	for _, d := range days {
		require.NotNil(t, d.Activities)
	}
}

func TestMonthSummary(t *testing.T) {
	records := []models.ActivityRecord{
		{ActivityDate: "2025-03-10", ClientName: "田中", ActivityTypeColor: "#ff0000"},
		{ActivityDate: "2025-03-10", ClientName: "佐藤"},
		{ActivityDate: "2025-03-10", ClientName: "鈴木", ActivityTypeColor: "#00ff00"},
	}

	summary := MonthSummary(2025, time.March, records)
	require.Len(t, summary, 31, "summary covers current-month days only")

	day := summary[9]
	require.Equal(t, "2025-03-10", day.Date)
	require.Equal(t, 3, day.Count)
	require.Equal(t, []string{"#ff0000", DefaultTypeColor}, day.Colors, "colors cap at two, missing color falls back to default")
	require.Equal(t, []string{"田中", "佐藤", "鈴木"}, day.ClientNames)

	require.Equal(t, 0, summary[0].Count)
	require.Empty(t, summary[0].Colors)
}
