// File: models/caregiver.go
package models

// Caregiver is a notification target. The core only ever reads these;
// enrollment happens in the caregiver dashboard.
type Caregiver struct {
	ID                   string `bson:"id" json:"id"`
	PatientID            string `bson:"patientId" json:"patientId"`
	PatientName          string `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Email                string `bson:"email" json:"email"`
	NotificationsEnabled bool   `bson:"notificationsEnabled" json:"notificationsEnabled"`
}
