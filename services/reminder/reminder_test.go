package reminder

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"memoryaid/models"
)

type fakeReminderRepo struct {
	reminders   []models.Reminder
	createCalls int
	failCreate  bool
	nextID      int
}

func (f *fakeReminderRepo) Create(_ context.Context, reminder models.Reminder) (*models.Reminder, error) {
	f.createCalls++
	if f.failCreate {
		return nil, errors.New("store unavailable")
	}
	f.nextID++
	reminder.ID = "rem-" + strconv.Itoa(f.nextID)
	f.reminders = append(f.reminders, reminder)
	return &reminder, nil
}

func (f *fakeReminderRepo) GetByID(_ context.Context, id string) (*models.Reminder, error) {
	for i := range f.reminders {
		if f.reminders[i].ID == id {
			return &f.reminders[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeReminderRepo) GetActive(_ context.Context, patientID, date string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range f.reminders {
		if r.PatientID != patientID || r.Status != models.ReminderStatusActive {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReminderRepo) GetForSummary(_ context.Context, patientID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range f.reminders {
		if r.PatientID == patientID && r.Status != models.ReminderStatusDeleted {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) GetPendingByDate(_ context.Context, patientID, date string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range f.reminders {
		if r.PatientID == patientID && r.Date == date && r.Status == models.ReminderStatusActive && !r.Completed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) MarkCompleted(_ context.Context, id string, at time.Time) error {
	for i := range f.reminders {
		if f.reminders[i].ID == id && f.reminders[i].Status != models.ReminderStatusDeleted {
			f.reminders[i].Completed = true
			f.reminders[i].CompletedAt = &at
			f.reminders[i].Status = models.ReminderStatusCompleted
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeReminderRepo) SoftDelete(_ context.Context, id string) error {
	for i := range f.reminders {
		if f.reminders[i].ID == id {
			f.reminders[i].Status = models.ReminderStatusDeleted
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeScheduler struct {
	scheduled []models.Reminder
	err       error
}

func (f *fakeScheduler) ScheduleDue(reminder models.Reminder) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, reminder)
	return nil
}

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newReminderService(repo *fakeReminderRepo, scheduler *fakeScheduler) *DefaultReminderService {
	svc := &DefaultReminderService{Repo: repo, Now: func() time.Time { return fixedNow }}
	if scheduler != nil {
		svc.Scheduler = scheduler
	}
	return svc
}

func TestCreateReminderRequiresTime(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newReminderService(repo, nil)

	created, response := svc.CreateReminder(context.Background(), models.Entities{Task: "take medication"}, "p1")

	assert.Nil(t, created)
	assert.Equal(t, "I need a time for the reminder. When should I remind you?", response)
	// Nothing must reach the store when the request is incomplete.
	assert.Zero(t, repo.createCalls)
}

func TestCreateReminderDefaults(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newReminderService(repo, nil)

	created, response := svc.CreateReminder(context.Background(), models.Entities{Time: "15:30"}, "p1")

	require.NotNil(t, created)
	assert.Equal(t, "Task", created.Task)
	assert.Equal(t, "2024-03-15", created.Date)
	assert.Equal(t, models.ReminderStatusActive, created.Status)
	assert.False(t, created.Completed)
	assert.Equal(t, "Reminder set for Task at 15:30 on 2024-03-15.", response)
}

func TestCreateReminderFullEntities(t *testing.T) {
	repo := &fakeReminderRepo{}
	scheduler := &fakeScheduler{}
	svc := newReminderService(repo, scheduler)

	created, response := svc.CreateReminder(context.Background(), models.Entities{
		Task: "call the doctor",
		Time: "09:00",
		Date: "2024-03-20",
	}, "p1")

	require.NotNil(t, created)
	assert.Equal(t, "Reminder set for call the doctor at 09:00 on 2024-03-20.", response)
	require.Len(t, scheduler.scheduled, 1)
	assert.Equal(t, created.ID, scheduler.scheduled[0].ID)
}

func TestCreateReminderSchedulerFailureNonFatal(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newReminderService(repo, &fakeScheduler{err: errors.New("redis down")})

	created, response := svc.CreateReminder(context.Background(), models.Entities{Task: "lunch", Time: "12:00"}, "p1")

	require.NotNil(t, created)
	assert.Equal(t, "Reminder set for lunch at 12:00 on 2024-03-15.", response)
	assert.Len(t, repo.reminders, 1)
}

func TestCreateReminderStoreFailure(t *testing.T) {
	svc := newReminderService(&fakeReminderRepo{failCreate: true}, nil)

	created, response := svc.CreateReminder(context.Background(), models.Entities{Time: "12:00"}, "p1")

	assert.Nil(t, created)
	assert.Equal(t, "I had trouble creating that reminder. Please try again.", response)
}

func TestMarkCompletedIdempotent(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newReminderService(repo, nil)

	created, _ := svc.CreateReminder(context.Background(), models.Entities{Task: "walk", Time: "16:00"}, "p1")
	require.NotNil(t, created)

	ok, message := svc.MarkCompleted(context.Background(), created.ID)
	assert.True(t, ok)
	assert.Equal(t, "Reminder marked as completed.", message)

	// Second completion rewrites the same terminal state.
	ok, message = svc.MarkCompleted(context.Background(), created.ID)
	assert.True(t, ok)
	assert.Equal(t, "Reminder marked as completed.", message)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.Equal(t, models.ReminderStatusCompleted, stored.Status)
}

func TestMarkCompletedUnknownID(t *testing.T) {
	svc := newReminderService(&fakeReminderRepo{}, nil)

	ok, message := svc.MarkCompleted(context.Background(), "missing")
	assert.False(t, ok)
	assert.Equal(t, "Could not mark reminder as completed.", message)
}

func TestDeleteReminderHidesFromSummary(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newReminderService(repo, nil)

	created, _ := svc.CreateReminder(context.Background(), models.Entities{Task: "nap", Time: "14:00"}, "p1")
	require.NotNil(t, created)

	ok, message := svc.DeleteReminder(context.Background(), created.ID)
	assert.True(t, ok)
	assert.Equal(t, "Reminder deleted.", message)

	summary, err := svc.GetRemindersForSummary(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestGetUpcomingReminders(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newReminderService(repo, nil)

	for _, tt := range []struct{ task, clock string }{
		{"breakfast", "08:00"}, // already passed at the fixed 10:00 clock
		{"medication", "10:00"},
		{"lunch", "12:00"},
		{"walk", "16:00"},
	} {
		_, _ = svc.CreateReminder(context.Background(), models.Entities{Task: tt.task, Time: tt.clock}, "p1")
	}

	upcoming, err := svc.GetUpcomingReminders(context.Background(), "p1", 2)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "medication", upcoming[0].Task)
	assert.Equal(t, "lunch", upcoming[1].Task)
}

func TestGetMissedReminders(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newReminderService(repo, nil)

	past, _ := svc.CreateReminder(context.Background(), models.Entities{Task: "breakfast", Time: "08:00"}, "p1")
	_, _ = svc.CreateReminder(context.Background(), models.Entities{Task: "lunch", Time: "12:00"}, "p1")
	done, _ := svc.CreateReminder(context.Background(), models.Entities{Task: "pills", Time: "07:00"}, "p1")
	require.NotNil(t, done)
	_, _ = svc.MarkCompleted(context.Background(), done.ID)

	missed, err := svc.GetMissedReminders(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, missed, 1)
	assert.Equal(t, past.ID, missed[0].ID)
}
