package caregiverRepo

import (
	"context"

	"memoryaid/database"
	"memoryaid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CaregiverRepository is read-only: caregiver enrollment is owned by the
// dashboard, the core only needs notification targets.
type CaregiverRepository interface {
	// GetNotifiable returns the patient's caregivers with notifications enabled.
	GetNotifiable(ctx context.Context, patientID string) ([]models.Caregiver, error)
}

type mongoCaregiverRepo struct {
	coll *mongo.Collection
}

// NewMongoCaregiverRepo returns a CaregiverRepository backed by MongoDB.
func NewMongoCaregiverRepo() CaregiverRepository {
	db := database.MongoClient.Database("memoryaid")
	return &mongoCaregiverRepo{
		coll: db.Collection("caregivers"),
	}
}
