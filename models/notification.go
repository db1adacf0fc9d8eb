// File: models/notification.go
package models

// ReminderPayload is the asynq task body for a scheduled reminder delivery.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	PatientID  string `json:"patientId"`
	Task       string `json:"task"`
	Time       string `json:"time"`
	Date       string `json:"date"`
}
