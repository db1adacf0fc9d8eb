package emergency

import (
	"context"

	"memoryaid/models"
)

// EmergencyService detects emergencies in patient speech and escalates them
// to caregivers.
type EmergencyService interface {
	// DetectEmergency reports whether the transcript or emotion indicates an
	// emergency, and at which severity tier.
	DetectEmergency(transcript string, emotion models.Emotion) (bool, models.Severity)
	// TriggerAlert persists an alert and fans out caregiver notifications.
	// It reports failure only when alert persistence itself fails; notification
	// failures are logged per recipient and never surface.
	TriggerAlert(ctx context.Context, patientID string, severity models.Severity, alertContext, transcript string) (bool, string)
	// ResolveAlert marks an alert resolved. Re-resolving is an idempotent no-op
	// that still reports success.
	ResolveAlert(ctx context.Context, alertID, resolvedBy string) bool
	GetActiveAlerts(ctx context.Context, patientID string) ([]models.Alert, error)
}
