package relationship

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	familyRepo "memoryaid/database/repository/family"
	"memoryaid/models"
	"memoryaid/utils"
)

// matchThreshold is exclusive: a minimum distance of exactly 0.6 is rejected.
const matchThreshold = 0.6

// DefaultRelationshipService is the production implementation.
type DefaultRelationshipService struct {
	Repo    familyRepo.FamilyRepository
	Matcher FaceMatcher
	Now     func() time.Time // defaults to time.Now
}

func (s *DefaultRelationshipService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IdentifyPerson scans the patient's directory for the closest stored
// signature. The first minimal distance found wins; acceptance requires it to
// be strictly below the threshold. A successful match logs an interaction and
// stamps the record before the cue message is built.
func (s *DefaultRelationshipService) IdentifyPerson(ctx context.Context, faceSignature []float64, patientID string) (*models.FamilyMember, string) {
	logger := utils.GetLogger()

	members, err := s.Repo.GetByPatientID(ctx, patientID)
	if err != nil {
		logger.Error("relationship: directory lookup failed",
			zap.String("patientId", patientID), zap.Error(err))
		return nil, "I'm having trouble recognizing faces right now."
	}
	if len(members) == 0 {
		return nil, "I don't recognize this person yet."
	}

	var match *models.FamilyMember
	bestDistance := 1.0
	for i := range members {
		if len(members[i].FaceSignature) == 0 {
			continue
		}
		distance := s.Matcher.Distance(members[i].FaceSignature, faceSignature)
		if distance < bestDistance && distance < matchThreshold {
			bestDistance = distance
			match = &members[i]
		}
	}

	if match == nil {
		return nil, "I don't recognize this person. Would you like to add them?"
	}

	s.logInteraction(ctx, patientID, match.ID)

	return match, s.buildCueMessage(match)
}

// logInteraction appends the match to the interaction log and updates the
// member's lastInteraction stamp. Failures are logged; the match itself
// already succeeded.
func (s *DefaultRelationshipService) logInteraction(ctx context.Context, patientID, memberID string) {
	logger := utils.GetLogger()
	now := s.now()

	if err := s.Repo.LogInteraction(ctx, models.Interaction{
		PatientID:      patientID,
		FamilyMemberID: memberID,
		Kind:           models.InteractionKindFaceRecognition,
		Timestamp:      now,
	}); err != nil {
		logger.Warn("relationship: failed to log interaction",
			zap.String("familyMemberId", memberID), zap.Error(err))
	}

	if err := s.Repo.UpdateLastInteraction(ctx, memberID, now); err != nil {
		logger.Warn("relationship: failed to stamp last interaction",
			zap.String("familyMemberId", memberID), zap.Error(err))
	}
}

// buildCueMessage produces the relationship cue, with a recency clause when
// the last encounter was within the past week.
func (s *DefaultRelationshipService) buildCueMessage(member *models.FamilyMember) string {
	message := fmt.Sprintf("This is %s, your %s.", member.Name, member.Relationship)

	if member.LastInteraction != nil {
		daysAgo := int(s.now().Sub(*member.LastInteraction).Hours() / 24)
		switch {
		case daysAgo == 0:
			message += fmt.Sprintf(" You saw %s earlier today.", member.Name)
		case daysAgo == 1:
			message += fmt.Sprintf(" You saw %s yesterday.", member.Name)
		case daysAgo < 7:
			message += fmt.Sprintf(" You last saw %s %d days ago.", member.Name, daysAgo)
		}
	}

	if member.Notes != "" {
		message += " " + member.Notes
	}
	return message
}

func (s *DefaultRelationshipService) AddFamilyMember(ctx context.Context, req AddFamilyMemberRequest) (bool, string) {
	member := models.FamilyMember{
		PatientID:     req.PatientID,
		Name:          req.Name,
		Relationship:  req.Relationship,
		FaceSignature: req.FaceSignature,
		PhotoURL:      req.PhotoURL,
		Notes:         req.Notes,
		CreatedAt:     s.now(),
	}

	if _, err := s.Repo.Create(ctx, member); err != nil {
		utils.GetLogger().Error("relationship: failed to add family member",
			zap.String("patientId", req.PatientID), zap.Error(err))
		return false, "Could not add this person. Please try again."
	}
	return true, fmt.Sprintf("Added %s as your %s.", req.Name, req.Relationship)
}

func (s *DefaultRelationshipService) GetFamilyMembers(ctx context.Context, patientID string) ([]models.FamilyMember, error) {
	return s.Repo.GetByPatientID(ctx, patientID)
}

// GetRecentInteractions joins recent interaction entries with the referenced
// member's name and relationship.
func (s *DefaultRelationshipService) GetRecentInteractions(ctx context.Context, patientID string, limit int64) ([]models.InteractionDetail, error) {
	interactions, err := s.Repo.GetRecentInteractions(ctx, patientID, limit)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(interactions))
	seen := make(map[string]bool, len(interactions))
	for _, in := range interactions {
		if !seen[in.FamilyMemberID] {
			seen[in.FamilyMemberID] = true
			ids = append(ids, in.FamilyMemberID)
		}
	}

	members, err := s.Repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.FamilyMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	details := make([]models.InteractionDetail, 0, len(interactions))
	for _, in := range interactions {
		detail := models.InteractionDetail{Interaction: in}
		if m, ok := byID[in.FamilyMemberID]; ok {
			detail.Name = m.Name
			detail.Relationship = m.Relationship
		}
		details = append(details, detail)
	}
	return details, nil
}
