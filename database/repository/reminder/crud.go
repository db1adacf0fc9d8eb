package reminderRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"memoryaid/models"
)

// Create inserts a new reminder and returns the persisted document.
func (r *mongoReminderRepo) Create(ctx context.Context, reminder models.Reminder) (*models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = time.Now()
	}
	if reminder.Status == "" {
		reminder.Status = models.ReminderStatusActive
	}

	if _, err := r.coll.InsertOne(ctx, reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// GetByID returns a reminder by its ID.
func (r *mongoReminderRepo) GetByID(ctx context.Context, id string) (*models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reminder models.Reminder
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// MarkCompleted flips a reminder to its completed terminal state. Applying it
// to an already-completed reminder matches by ID and rewrites the same state,
// so the call stays idempotent.
func (r *mongoReminderRepo) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"completed":   true,
		"completedAt": at,
		"status":      models.ReminderStatusCompleted,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SoftDelete marks a reminder deleted without removing the document. Prior
// status is intentionally not checked.
func (r *mongoReminderRepo) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.ReminderStatusDeleted}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
