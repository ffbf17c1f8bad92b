package report

import (
	"time"

	"carelog-be/internal/models"
)

// TaskPartition splits records into completed work and open tasks, with open
// tasks further split by whether their date has passed. The three lists are
// disjoint and together cover every input record.
type TaskPartition struct {
	Overdue   []models.ActivityRecord
	Pending   []models.ActivityRecord
	Completed []models.ActivityRecord
}

// Partition classifies records against the caller-supplied today. Comparison
// is date-only on the canonical YYYY-MM-DD form, so a task due today is
// pending, not overdue.
func Partition(records []models.ActivityRecord, today time.Time) TaskPartition {
	todayDate := CivilDate(today)
	p := TaskPartition{
		Overdue:   []models.ActivityRecord{},
		Pending:   []models.ActivityRecord{},
		Completed: []models.ActivityRecord{},
	}
	for _, r := range records {
		switch {
		case r.Completed:
			p.Completed = append(p.Completed, r)
		case r.ActivityDate < todayDate:
			p.Overdue = append(p.Overdue, r)
		default:
			p.Pending = append(p.Pending, r)
		}
	}
	return p
}
