package familyRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memoryaid/models"
)

func (r *mongoFamilyRepo) GetByPatientID(ctx context.Context, patientID string) ([]models.FamilyMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.members.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch family members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.FamilyMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("error decoding family members: %w", err)
	}
	return members, nil
}

func (r *mongoFamilyRepo) GetByIDs(ctx context.Context, ids []string) ([]models.FamilyMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.members.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch family members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.FamilyMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("error decoding family members: %w", err)
	}
	return members, nil
}

func (r *mongoFamilyRepo) GetRecentInteractions(ctx context.Context, patientID string, limit int64) ([]models.Interaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.interactions.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interactions: %w", err)
	}
	defer cursor.Close(ctx)

	var interactions []models.Interaction
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, fmt.Errorf("error decoding interactions: %w", err)
	}
	return interactions, nil
}
