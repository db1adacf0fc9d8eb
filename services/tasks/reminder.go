package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"memoryaid/models"
)

const TypeReminderDue = "reminder:due"

// NewReminderDueTask builds the asynq task that fires when a reminder comes due.
func NewReminderDueTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderDue, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler schedules delivery of a reminder at its due time.
type ReminderScheduler interface {
	ScheduleDue(reminder models.Reminder) error
}

// AsynqReminderScheduler enqueues due-reminder tasks on the shared queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func (s *AsynqReminderScheduler) ScheduleDue(reminder models.Reminder) error {
	fireAt, err := parseDue(reminder.Date, reminder.Time)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder %s: %w", reminder.ID, err)
	}

	payload := models.ReminderPayload{
		ReminderID: reminder.ID,
		PatientID:  reminder.PatientID,
		Task:       reminder.Task,
		Time:       reminder.Time,
		Date:       reminder.Date,
	}
	task, opts, err := NewReminderDueTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder %s: %w", reminder.ID, err)
	}
	return nil
}

// parseDue combines a YYYY-MM-DD date with a wall-clock time. Upstream entity
// extraction produces either 24-hour or 12-hour clock strings.
func parseDue(date, clock string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 03:04 PM", "2006-01-02 3:04 PM"} {
		if t, err := time.ParseInLocation(layout, date+" "+clock, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date/time %q %q", date, clock)
}
