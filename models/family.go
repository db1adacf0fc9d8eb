// File: models/family.go
package models

import "time"

// FamilyMember is one entry in a patient's relationship directory.
type FamilyMember struct {
	ID              string     `bson:"id" json:"id"`
	PatientID       string     `bson:"patientId" json:"patientId"`
	Name            string     `bson:"name" json:"name"`
	Relationship    string     `bson:"relationship" json:"relationship"`
	FaceSignature   []float64  `bson:"faceSignature,omitempty" json:"faceSignature,omitempty"`
	PhotoURL        string     `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Notes           string     `bson:"notes,omitempty" json:"notes,omitempty"`
	LastInteraction *time.Time `bson:"lastInteraction,omitempty" json:"lastInteraction,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}

// Interaction is an append-only log entry; one per successful identity match.
type Interaction struct {
	ID             string    `bson:"id" json:"id"`
	PatientID      string    `bson:"patientId" json:"patientId"`
	FamilyMemberID string    `bson:"familyMemberId" json:"familyMemberId"`
	Kind           string    `bson:"kind" json:"kind"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
}

// InteractionKindFaceRecognition is the only kind the core writes today.
const InteractionKindFaceRecognition = "face_recognition"

// InteractionDetail joins an interaction with the matched member's identity,
// for the daily digest and the caregiver dashboard.
type InteractionDetail struct {
	Interaction  Interaction `json:"interaction"`
	Name         string      `json:"name"`
	Relationship string      `json:"relationship"`
}
