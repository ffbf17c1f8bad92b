package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a person receiving home-visit care. The master resident database
// is the source of truth for identity; MasterUID links back to it.
type Client struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	MasterUID string             `json:"masterUid,omitempty" bson:"masterUid,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	MasterUID string `json:"masterUid"`
}

// ClientCareStatus is the dashboard row for a client: when they were last
// visited, by whom, and how urgent a follow-up is.
type ClientCareStatus struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	MasterUID             string `json:"masterUid,omitempty"`
	LastActivityDate      string `json:"lastActivityDate,omitempty"`
	LastActivityStaffName string `json:"lastActivityStaffName,omitempty"`
	DaysElapsed           int    `json:"daysElapsed"`
	Tier                  string `json:"tier"`
	IsOverdue             bool   `json:"isOverdue"`
}

type ClientSearchResult struct {
	Client *Client `json:"client"`
	Score  int     `json:"score"`
}
