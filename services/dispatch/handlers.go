package dispatch

import (
	"context"
	"fmt"
	"strings"

	"memoryaid/models"
)

func (d *Dispatcher) handleReminder(ctx context.Context, req models.UtteranceRequest) (models.HandlerResult, error) {
	created, response := d.Reminders.CreateReminder(ctx, req.Entities, req.PatientID)
	return models.HandlerResult{Success: created != nil, Response: response}, nil
}

func (d *Dispatcher) handleIdentity(ctx context.Context, req models.UtteranceRequest) (models.HandlerResult, error) {
	if len(req.FaceSignature) == 0 {
		return models.HandlerResult{
			Success:  false,
			Response: "I need to see someone's face to identify them. Please look at the person.",
		}, nil
	}

	person, cue := d.Relationships.IdentifyPerson(ctx, req.FaceSignature, req.PatientID)
	return models.HandlerResult{Success: person != nil, Response: cue}, nil
}

func (d *Dispatcher) handleEmergency(ctx context.Context, req models.UtteranceRequest) (models.HandlerResult, error) {
	ok, response := d.Emergency.TriggerAlert(ctx, req.PatientID,
		models.SeverityCritical, "User-initiated emergency alert", req.Entities.RawText)
	return models.HandlerResult{Success: ok, Response: response}, nil
}

func (d *Dispatcher) handleObjectLocation(req models.UtteranceRequest) (models.HandlerResult, error) {
	obj := req.Entities.Object
	if obj == "" {
		return models.HandlerResult{Success: false, Response: "What are you looking for?"}, nil
	}

	response := fmt.Sprintf("Let me help you find your %s. Check the usual places like the table or your room.", obj)
	return models.HandlerResult{Success: true, Response: response}, nil
}

func (d *Dispatcher) handleDailySummary(ctx context.Context, req models.UtteranceRequest) (models.HandlerResult, error) {
	interactions, err := d.Relationships.GetRecentInteractions(ctx, req.PatientID, 5)
	if err != nil {
		return models.HandlerResult{}, err
	}
	reminders, err := d.Reminders.GetRemindersForSummary(ctx, req.PatientID)
	if err != nil {
		return models.HandlerResult{}, err
	}

	if len(interactions) == 0 && len(reminders) == 0 {
		return models.HandlerResult{Success: true, Response: "You haven't had any recorded interactions today yet."}, nil
	}

	var summary strings.Builder
	summary.WriteString("Here's what happened today. ")

	if len(interactions) > 0 {
		// Distinct people, first-seen order; name at most three.
		seen := make(map[string]bool, len(interactions))
		var names []string
		for _, in := range interactions {
			if seen[in.Interaction.FamilyMemberID] {
				continue
			}
			seen[in.Interaction.FamilyMemberID] = true
			if in.Name != "" {
				names = append(names, in.Name)
			}
		}
		fmt.Fprintf(&summary, "You met with %d people. ", len(seen))
		if len(names) > 3 {
			names = names[:3]
		}
		for _, name := range names {
			fmt.Fprintf(&summary, "You saw %s. ", name)
		}
	}

	completed := 0
	for _, r := range reminders {
		if r.Completed {
			completed++
		}
	}
	if completed > 0 {
		fmt.Fprintf(&summary, "You completed %d reminders. ", completed)
	}

	return models.HandlerResult{Success: true, Response: summary.String()}, nil
}

// handleSmallTalk matches a fixed priority list of phrases before falling
// back to the default greeting.
func (d *Dispatcher) handleSmallTalk(req models.UtteranceRequest) (models.HandlerResult, error) {
	text := strings.ToLower(req.Entities.RawText)

	var response string
	switch {
	case strings.Contains(text, "how are you"):
		response = "I'm doing well, thank you for asking. How are you feeling?"
	case strings.Contains(text, "thank"):
		response = "You're very welcome!"
	case strings.Contains(text, "hello"), strings.Contains(text, "hi"):
		response = "Hello! How can I help you today?"
	case strings.Contains(text, "goodbye"), strings.Contains(text, "bye"):
		response = "Goodbye! I'll be here if you need me."
	default:
		response = "I'm here to help you. What do you need?"
	}
	return models.HandlerResult{Success: true, Response: response}, nil
}

func (d *Dispatcher) handleMemoryTraining(_ models.UtteranceRequest) (models.HandlerResult, error) {
	return models.HandlerResult{
		Success:  true,
		Response: "Let's practice together. I'll show you some familiar faces and you can tell me who they are.",
	}, nil
}

func (d *Dispatcher) handleUnknown(_ models.UtteranceRequest) (models.HandlerResult, error) {
	return models.HandlerResult{
		Success:  false,
		Response: "I'm not sure I understood that. Could you say it again?",
	}, nil
}
