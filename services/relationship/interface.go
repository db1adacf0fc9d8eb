package relationship

import (
	"context"

	"memoryaid/models"
)

// RelationshipService resolves identities against the patient's relationship
// directory and produces cue messages.
type RelationshipService interface {
	// IdentifyPerson returns the best directory match for a face signature, or
	// nil with a graceful prompt when nothing matches closely enough.
	IdentifyPerson(ctx context.Context, faceSignature []float64, patientID string) (*models.FamilyMember, string)
	AddFamilyMember(ctx context.Context, req AddFamilyMemberRequest) (bool, string)
	GetFamilyMembers(ctx context.Context, patientID string) ([]models.FamilyMember, error)
	GetRecentInteractions(ctx context.Context, patientID string, limit int64) ([]models.InteractionDetail, error)
}

// AddFamilyMemberRequest carries the fields for a new directory record.
type AddFamilyMemberRequest struct {
	PatientID     string    `json:"patientId"`
	Name          string    `json:"name"`
	Relationship  string    `json:"relationship"`
	FaceSignature []float64 `json:"faceSignature,omitempty"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// FaceMatcher is the face-similarity collaborator: lower distance means more
// similar, with 0 an exact match.
type FaceMatcher interface {
	Distance(a, b []float64) float64
}
