// File: models/reminder.go
package models

import "time"

// Reminder statuses. Transitions are monotone: active may move to completed
// or deleted, nothing restores active. Deletion is a soft status change; the
// document is never removed.
const (
	ReminderStatusActive    = "active"
	ReminderStatusCompleted = "completed"
	ReminderStatusDeleted   = "deleted"
)

type Reminder struct {
	ID          string     `bson:"id" json:"id"`
	PatientID   string     `bson:"patientId" json:"patientId"`
	Task        string     `bson:"task" json:"task"`
	Time        string     `bson:"time" json:"time"` // HH:MM wall-clock string
	Date        string     `bson:"date" json:"date"` // YYYY-MM-DD
	Completed   bool       `bson:"completed" json:"completed"`
	Status      string     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
