package activityRepo

import (
	"context"

	"memoryaid/database"
	"memoryaid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ActivityRepository interface {
	Append(ctx context.Context, entry models.ActivityEntry) error
	// GetRecent returns entries descending by timestamp.
	GetRecent(ctx context.Context, patientID string, limit int64) ([]models.ActivityEntry, error)
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo returns an ActivityRepository backed by MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	db := database.MongoClient.Database("memoryaid")
	return &mongoActivityRepo{
		coll: db.Collection("activity_log"),
	}
}
