package report

import (
	"testing"
	"time"

	"carelog-be/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	today := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local)

	records := []models.ActivityRecord{
		{ActivityDate: "2025-03-10", Content: "done last week", Completed: true},
		{ActivityDate: "2025-03-14", Content: "missed yesterday"},
		{ActivityDate: "2025-03-15", Content: "due today"},
		{ActivityDate: "2025-03-20", Content: "due next week"},
		{ActivityDate: "2025-04-01", Content: "done early", Completed: true},
	}

	p := Partition(records, today)

	require.Len(t, p.Completed, 2, "completed wins regardless of date")
	require.Equal(t, "done last week", p.Completed[0].Content)
	require.Equal(t, "done early", p.Completed[1].Content)

	require.Len(t, p.Overdue, 1)
	require.Equal(t, "missed yesterday", p.Overdue[0].Content)

	require.Len(t, p.Pending, 2, "a task due today is pending, not overdue")
	require.Equal(t, "due today", p.Pending[0].Content)
	require.Equal(t, "due next week", p.Pending[1].Content)

	require.Equal(t, len(records), len(p.Overdue)+len(p.Pending)+len(p.Completed))
}

func TestPartitionEmpty(t *testing.T) {
	p := Partition(nil, time.Now())
	require.NotNil(t, p.Overdue)
	require.NotNil(t, p.Pending)
	require.NotNil(t, p.Completed)
}
