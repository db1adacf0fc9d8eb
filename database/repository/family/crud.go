package familyRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"memoryaid/models"
)

// Create inserts a new family member record.
func (r *mongoFamilyRepo) Create(ctx context.Context, member models.FamilyMember) (*models.FamilyMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}

	if _, err := r.members.InsertOne(ctx, member); err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateLastInteraction stamps the member's last successful identity match.
func (r *mongoFamilyRepo) UpdateLastInteraction(ctx context.Context, memberID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"lastInteraction": at}}
	res, err := r.members.UpdateOne(ctx, bson.M{"id": memberID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// LogInteraction appends an interaction entry.
func (r *mongoFamilyRepo) LogInteraction(ctx context.Context, interaction models.Interaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if interaction.ID == "" {
		interaction.ID = uuid.New().String()
	}
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = time.Now()
	}

	_, err := r.interactions.InsertOne(ctx, interaction)
	return err
}
