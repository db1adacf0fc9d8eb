package reminderRepo

import (
	"context"
	"log"
	"time"

	"memoryaid/database"
	"memoryaid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder models.Reminder) (*models.Reminder, error)
	GetByID(ctx context.Context, id string) (*models.Reminder, error)
	// GetActive returns active reminders ordered by time ascending; date is an
	// exact-match filter when non-empty.
	GetActive(ctx context.Context, patientID, date string) ([]models.Reminder, error)
	// GetForSummary returns active and completed reminders (deleted excluded).
	GetForSummary(ctx context.Context, patientID string) ([]models.Reminder, error)
	// GetPendingByDate returns non-completed active reminders for an exact date.
	GetPendingByDate(ctx context.Context, patientID, date string) ([]models.Reminder, error)
	MarkCompleted(ctx context.Context, id string, at time.Time) error
	SoftDelete(ctx context.Context, id string) error
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo returns a ReminderRepository backed by MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	db := database.MongoClient.Database("memoryaid")
	repo := &mongoReminderRepo{
		coll: db.Collection("reminders"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("failed to create reminder indexes: %v", err)
	}
	return repo
}
