package notification

import (
	"context"

	"memoryaid/models"
)

// NotificationService delivers one alert notification to one caregiver.
// Callers own the fan-out; a send is attempted at most once per caregiver
// per alert.
type NotificationService interface {
	SendAlertEmail(ctx context.Context, caregiver models.Caregiver, alert models.Alert) error
}
