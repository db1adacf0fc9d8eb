package emergency

import (
	"context"
	"time"

	"go.uber.org/zap"

	alertRepo "memoryaid/database/repository/alert"
	caregiverRepo "memoryaid/database/repository/caregiver"
	"memoryaid/models"
	"memoryaid/services/notification"
	"memoryaid/utils"
)

// DefaultEmergencyService is the production implementation.
type DefaultEmergencyService struct {
	Alerts     alertRepo.AlertRepository
	Caregivers caregiverRepo.CaregiverRepository
	Notifier   notification.NotificationService
	Now        func() time.Time // defaults to time.Now
}

func (s *DefaultEmergencyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// TriggerAlert persists the alert, then notifies every enabled caregiver.
// The fan-out is fire-and-forget: once the alert is stored, notification
// trouble never changes the reported outcome, and one caregiver's failure
// never blocks another's send.
func (s *DefaultEmergencyService) TriggerAlert(ctx context.Context, patientID string, severity models.Severity, alertContext, transcript string) (bool, string) {
	logger := utils.GetLogger()

	alert, err := s.Alerts.Create(ctx, models.Alert{
		PatientID:  patientID,
		Severity:   severity,
		Context:    alertContext,
		Transcript: transcript,
		Status:     models.AlertStatusActive,
		Resolved:   false,
		CreatedAt:  s.now(),
	})
	if err != nil {
		logger.Error("emergency: alert persistence failed",
			zap.String("patientId", patientID),
			zap.Error(utils.IntegrationError{Op: "alerts.insert", Err: err}))
		return false, "I'm having trouble sending the alert. Please call for help."
	}

	if err := s.Alerts.Log(ctx, models.AlertLog{
		PatientID: patientID,
		AlertType: string(severity),
		Details:   alertContext,
		Timestamp: s.now(),
	}); err != nil {
		logger.Warn("emergency: failed to write alert log", zap.String("alertId", alert.ID), zap.Error(err))
	}

	caregivers, err := s.Caregivers.GetNotifiable(ctx, patientID)
	if err != nil {
		logger.Error("emergency: caregiver lookup failed",
			zap.String("patientId", patientID), zap.Error(err))
	}
	for _, caregiver := range caregivers {
		if err := s.Notifier.SendAlertEmail(ctx, caregiver, *alert); err != nil {
			logger.Error("emergency: caregiver notification failed",
				zap.String("alertId", alert.ID),
				zap.String("caregiverEmail", caregiver.Email),
				zap.Error(err))
			continue
		}
		logger.Info("emergency: caregiver notified",
			zap.String("alertId", alert.ID),
			zap.String("caregiverEmail", caregiver.Email))
	}

	return true, "I've notified your caregiver. Help is on the way."
}

func (s *DefaultEmergencyService) ResolveAlert(ctx context.Context, alertID, resolvedBy string) bool {
	if err := s.Alerts.Resolve(ctx, alertID, resolvedBy, s.now()); err != nil {
		utils.GetLogger().Error("emergency: resolve failed",
			zap.String("alertId", alertID), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultEmergencyService) GetActiveAlerts(ctx context.Context, patientID string) ([]models.Alert, error) {
	return s.Alerts.GetActive(ctx, patientID)
}
