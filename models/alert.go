// File: models/alert.go
package models

import "time"

// Severity ranks the urgency of a detected emergency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Alert statuses. Only active→resolved is a valid transition.
const (
	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

type Alert struct {
	ID         string     `bson:"id" json:"id"`
	PatientID  string     `bson:"patientId" json:"patientId"`
	Severity   Severity   `bson:"severity" json:"severity"`
	Context    string     `bson:"context" json:"context"`
	Transcript string     `bson:"transcript,omitempty" json:"transcript,omitempty"`
	Status     string     `bson:"status" json:"status"`
	Resolved   bool       `bson:"resolved" json:"resolved"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	ResolvedAt *time.Time `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	ResolvedBy string     `bson:"resolvedBy,omitempty" json:"resolvedBy,omitempty"`
}

// AlertLog is a secondary tracking entry written alongside each alert.
type AlertLog struct {
	ID        string    `bson:"id" json:"id"`
	PatientID string    `bson:"patientId" json:"patientId"`
	AlertType string    `bson:"alertType" json:"alertType"`
	Details   string    `bson:"details" json:"details"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
