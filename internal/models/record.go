package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityRecord is one logged unit of client-facing work. A completed record
// carries actual start/end times; an open task carries a desired task time.
//
// IsCompleted is tri-state in storage: records created before the flag
// existed have no value and count as completed. The repository resolves that
// into Completed exactly once at load so nothing downstream re-checks the
// nullable flag.
type ActivityRecord struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ActivityDate   string              `json:"activityDate" bson:"activityDate"` // YYYY-MM-DD
	StartTime      *string             `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime        *string             `json:"endTime,omitempty" bson:"endTime,omitempty"`
	TaskTime       *string             `json:"taskTime,omitempty" bson:"taskTime,omitempty"`
	Content        string              `json:"content,omitempty" bson:"content,omitempty"`
	ClientID       primitive.ObjectID  `json:"clientId" bson:"clientId"`
	StaffID        *primitive.ObjectID `json:"staffId,omitempty" bson:"staffId,omitempty"`
	ActivityTypeID primitive.ObjectID  `json:"activityTypeId" bson:"activityTypeId"`
	IsCompleted    *bool               `json:"-" bson:"isCompleted,omitempty"`
	Completed      bool                `json:"completed" bson:"-"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`

	// Display names joined from the client/staff/activity_types collections
	// on fetch. Empty when the referenced document is gone.
	ClientName        string `json:"clientName,omitempty" bson:"clientName,omitempty"`
	StaffName         string `json:"staffName,omitempty" bson:"staffName,omitempty"`
	ActivityTypeName  string `json:"activityTypeName,omitempty" bson:"activityTypeName,omitempty"`
	ActivityTypeColor string `json:"activityTypeColor,omitempty" bson:"activityTypeColor,omitempty"`
}

// ResolveCompleted applies the "absent means completed" default.
func (r *ActivityRecord) ResolveCompleted() {
	r.Completed = r.IsCompleted == nil || *r.IsCompleted
}

type CreateRecordRequest struct {
	ActivityDate   string  `json:"activityDate" binding:"required"`
	ClientID       string  `json:"clientId" binding:"required"`
	StaffID        string  `json:"staffId"`
	ActivityTypeID string  `json:"activityTypeId" binding:"required"`
	Content        string  `json:"content"`
	StartTime      *string `json:"startTime"`
	EndTime        *string `json:"endTime"`
	TaskTime       *string `json:"taskTime"`
	Completed      *bool   `json:"completed"`
}

type UpdateRecordRequest struct {
	ActivityDate   string  `json:"activityDate"`
	StaffID        string  `json:"staffId"`
	ActivityTypeID string  `json:"activityTypeId"`
	Content        *string `json:"content"`
	StartTime      *string `json:"startTime"`
	EndTime        *string `json:"endTime"`
	TaskTime       *string `json:"taskTime"`
	Completed      *bool   `json:"completed"`
}

type AssignTaskRequest struct {
	StaffID string `json:"staffId" binding:"required"`
}

// LastActivity is the most recent record per client, used to compute
// days-since-last-contact on the dashboard.
type LastActivity struct {
	ClientID     primitive.ObjectID `bson:"_id"`
	ActivityDate string             `bson:"activityDate"`
	StaffName    string             `bson:"staffName"`
}
