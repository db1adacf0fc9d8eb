package familyRepo

import (
	"context"
	"log"
	"time"

	"memoryaid/database"
	"memoryaid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type FamilyRepository interface {
	Create(ctx context.Context, member models.FamilyMember) (*models.FamilyMember, error)
	// GetByPatientID returns the patient's full directory ordered by name.
	GetByPatientID(ctx context.Context, patientID string) ([]models.FamilyMember, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.FamilyMember, error)
	UpdateLastInteraction(ctx context.Context, memberID string, at time.Time) error
	// LogInteraction appends one entry; the log is append-only.
	LogInteraction(ctx context.Context, interaction models.Interaction) error
	// GetRecentInteractions returns entries descending by timestamp.
	GetRecentInteractions(ctx context.Context, patientID string, limit int64) ([]models.Interaction, error)
}

type mongoFamilyRepo struct {
	members      *mongo.Collection
	interactions *mongo.Collection
}

// NewMongoFamilyRepo returns a FamilyRepository backed by MongoDB.
func NewMongoFamilyRepo() FamilyRepository {
	db := database.MongoClient.Database("memoryaid")
	repo := &mongoFamilyRepo{
		members:      db.Collection("family_members"),
		interactions: db.Collection("interactions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("failed to create family indexes: %v", err)
	}
	return repo
}
