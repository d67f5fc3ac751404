package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Contact statuses.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// Contact priorities.
const (
	ContactPriorityLow    = "low"
	ContactPriorityMedium = "medium"
	ContactPriorityHigh   = "high"
	ContactPriorityUrgent = "urgent"
)

// Contact is a contact-form or service-request submission.
type Contact struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	Status    string        `bson:"status" json:"status"`
	Priority  string        `bson:"priority" json:"priority"`
	Category  string        `bson:"category" json:"category"`
	Source    string        `bson:"source" json:"source"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// ValidContactStatus reports whether s is a known contact status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusClosed:
		return true
	}
	return false
}
