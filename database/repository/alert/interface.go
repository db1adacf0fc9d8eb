package alertRepo

import (
	"context"
	"log"
	"time"

	"memoryaid/database"
	"memoryaid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AlertRepository interface {
	Create(ctx context.Context, alert models.Alert) (*models.Alert, error)
	// Resolve writes the resolved terminal state unconditionally; resolving an
	// already-resolved alert rewrites the same state and refreshes resolvedAt.
	Resolve(ctx context.Context, alertID, resolvedBy string, at time.Time) error
	// GetActive returns active alerts ordered by creation time descending.
	GetActive(ctx context.Context, patientID string) ([]models.Alert, error)
	Log(ctx context.Context, entry models.AlertLog) error
}

type mongoAlertRepo struct {
	alerts *mongo.Collection
	logs   *mongo.Collection
}

// NewMongoAlertRepo returns an AlertRepository backed by MongoDB.
func NewMongoAlertRepo() AlertRepository {
	db := database.MongoClient.Database("memoryaid")
	repo := &mongoAlertRepo{
		alerts: db.Collection("alerts"),
		logs:   db.Collection("alert_logs"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("failed to create alert indexes: %v", err)
	}
	return repo
}
