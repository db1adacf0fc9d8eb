package alertRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"memoryaid/models"
)

// Create inserts a new alert in its active state.
func (r *mongoAlertRepo) Create(ctx context.Context, alert models.Alert) (*models.Alert, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	if alert.Status == "" {
		alert.Status = models.AlertStatusActive
	}

	if _, err := r.alerts.InsertOne(ctx, alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *mongoAlertRepo) Resolve(ctx context.Context, alertID, resolvedBy string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     models.AlertStatusResolved,
		"resolved":   true,
		"resolvedAt": at,
		"resolvedBy": resolvedBy,
	}}
	res, err := r.alerts.UpdateOne(ctx, bson.M{"id": alertID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Log appends an alert tracking entry.
func (r *mongoAlertRepo) Log(ctx context.Context, entry models.AlertLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.logs.InsertOne(ctx, entry)
	return err
}
