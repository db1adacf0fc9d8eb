package reminder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	reminderRepo "memoryaid/database/repository/reminder"
	"memoryaid/models"
	"memoryaid/services/tasks"
	"memoryaid/utils"
)

const defaultTask = "Task"

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo      reminderRepo.ReminderRepository
	Scheduler tasks.ReminderScheduler // optional; nil disables due-time delivery
	Now       func() time.Time        // defaults to time.Now
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateReminder persists a reminder from the extracted entities. Time is
// required; task and date fall back to defaults.
func (s *DefaultReminderService) CreateReminder(ctx context.Context, entities models.Entities, patientID string) (*models.Reminder, string) {
	logger := utils.GetLogger()

	if entities.Time == "" {
		return nil, "I need a time for the reminder. When should I remind you?"
	}

	task := entities.Task
	if task == "" {
		task = defaultTask
	}
	date := entities.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	reminder := models.Reminder{
		PatientID: patientID,
		Task:      task,
		Time:      entities.Time,
		Date:      date,
		Completed: false,
		Status:    models.ReminderStatusActive,
		CreatedAt: s.now(),
	}

	created, err := s.Repo.Create(ctx, reminder)
	if err != nil {
		logger.Error("reminder: create failed",
			zap.String("patientId", patientID),
			zap.Error(utils.IntegrationError{Op: "reminders.insert", Err: err}))
		return nil, "I had trouble creating that reminder. Please try again."
	}

	if s.Scheduler != nil {
		// Delivery scheduling is best-effort; the reminder itself is already
		// persisted and must not be rolled back on queue trouble.
		if err := s.Scheduler.ScheduleDue(*created); err != nil {
			logger.Warn("reminder: failed to schedule due-time delivery",
				zap.String("reminderId", created.ID), zap.Error(err))
		}
	}

	response := fmt.Sprintf("Reminder set for %s at %s on %s.", task, entities.Time, date)
	return created, response
}

func (s *DefaultReminderService) GetReminders(ctx context.Context, patientID, date string) ([]models.Reminder, error) {
	return s.Repo.GetActive(ctx, patientID, date)
}

func (s *DefaultReminderService) GetRemindersForSummary(ctx context.Context, patientID string) ([]models.Reminder, error) {
	return s.Repo.GetForSummary(ctx, patientID)
}

// GetUpcomingReminders keeps today's active reminders whose wall-clock time
// has not passed yet. HH:MM strings compare lexicographically.
func (s *DefaultReminderService) GetUpcomingReminders(ctx context.Context, patientID string, limit int) ([]models.Reminder, error) {
	today := s.now().Format("2006-01-02")
	reminders, err := s.Repo.GetActive(ctx, patientID, today)
	if err != nil {
		return nil, err
	}

	currentTime := s.now().Format("15:04")
	upcoming := make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.Time >= currentTime && !r.Completed {
			upcoming = append(upcoming, r)
		}
	}
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

// MarkCompleted moves a reminder into its completed terminal state. Calling
// it again on a completed reminder rewrites the same state and still
// reports success.
func (s *DefaultReminderService) MarkCompleted(ctx context.Context, reminderID string) (bool, string) {
	if err := s.Repo.MarkCompleted(ctx, reminderID, s.now()); err != nil {
		utils.GetLogger().Error("reminder: mark completed failed",
			zap.String("reminderId", reminderID), zap.Error(err))
		return false, "Could not mark reminder as completed."
	}
	return true, "Reminder marked as completed."
}

// DeleteReminder soft-deletes without checking prior status.
func (s *DefaultReminderService) DeleteReminder(ctx context.Context, reminderID string) (bool, string) {
	if err := s.Repo.SoftDelete(ctx, reminderID); err != nil {
		utils.GetLogger().Error("reminder: delete failed",
			zap.String("reminderId", reminderID), zap.Error(err))
		return false, "Could not delete reminder."
	}
	return true, "Reminder deleted."
}

func (s *DefaultReminderService) GetMissedReminders(ctx context.Context, patientID string) ([]models.Reminder, error) {
	today := s.now().Format("2006-01-02")
	pending, err := s.Repo.GetPendingByDate(ctx, patientID, today)
	if err != nil {
		return nil, err
	}

	currentTime := s.now().Format("15:04")
	missed := make([]models.Reminder, 0, len(pending))
	for _, r := range pending {
		if r.Time < currentTime {
			missed = append(missed, r)
		}
	}
	return missed, nil
}
