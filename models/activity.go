// File: models/activity.go
package models

import "time"

// Activity types recorded by the pipeline.
const (
	ActivityVoiceCommand = "voice_command"
	ActivityReminderDue  = "reminder_due"
)

// ActivityEntry is one row of the caregiver-facing activity feed.
type ActivityEntry struct {
	ID           string            `bson:"id" json:"id"`
	PatientID    string            `bson:"patientId" json:"patientId"`
	ActivityType string            `bson:"activityType" json:"activityType"`
	Description  string            `bson:"description" json:"description"`
	Metadata     map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp    time.Time         `bson:"timestamp" json:"timestamp"`
}
