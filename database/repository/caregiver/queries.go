package caregiverRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"memoryaid/models"
)

func (r *mongoCaregiverRepo) GetNotifiable(ctx context.Context, patientID string) ([]models.Caregiver, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"patientId":            patientID,
		"notificationsEnabled": true,
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caregivers: %w", err)
	}
	defer cursor.Close(ctx)

	var caregivers []models.Caregiver
	if err := cursor.All(ctx, &caregivers); err != nil {
		return nil, fmt.Errorf("error decoding caregivers: %w", err)
	}
	return caregivers, nil
}
