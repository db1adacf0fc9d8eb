package reminder

import (
	"context"

	"memoryaid/models"
)

// ReminderService manages the reminder lifecycle for a patient.
type ReminderService interface {
	// CreateReminder builds a reminder from extracted entities. A nil reminder
	// with a clarifying response means the request was incomplete; nothing was
	// persisted.
	CreateReminder(ctx context.Context, entities models.Entities, patientID string) (*models.Reminder, string)
	// GetReminders returns active reminders ordered by time ascending; date is
	// an exact-match filter when non-empty.
	GetReminders(ctx context.Context, patientID, date string) ([]models.Reminder, error)
	// GetRemindersForSummary returns active plus completed reminders for the
	// daily digest.
	GetRemindersForSummary(ctx context.Context, patientID string) ([]models.Reminder, error)
	// GetUpcomingReminders returns today's not-yet-due reminders, at most limit.
	GetUpcomingReminders(ctx context.Context, patientID string, limit int) ([]models.Reminder, error)
	MarkCompleted(ctx context.Context, reminderID string) (bool, string)
	DeleteReminder(ctx context.Context, reminderID string) (bool, string)
	// GetMissedReminders returns today's active reminders whose time has passed.
	GetMissedReminders(ctx context.Context, patientID string) ([]models.Reminder, error)
}
