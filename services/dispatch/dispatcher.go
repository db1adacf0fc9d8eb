package dispatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"memoryaid/models"
	"memoryaid/services/emergency"
	"memoryaid/services/relationship"
	"memoryaid/services/reminder"
	"memoryaid/services/speech"
	"memoryaid/utils"
)

const fallbackResponse = "I'm having trouble with that request. Could you try again?"

// Dispatcher routes classified utterances to intent handlers. Collaborators
// are explicit fields so each deployment (and each test) constructs its own
// instance.
type Dispatcher struct {
	Reminders     reminder.ReminderService
	Relationships relationship.RelationshipService
	Emergency     emergency.EmergencyService
	Speech        speech.Engine // optional
}

// Route runs one synchronous pipeline invocation: primary handler, then the
// cross-cutting escalation check. No handler failure escapes: errors and
// panics are normalized to a graceful fallback result.
func (d *Dispatcher) Route(ctx context.Context, req models.UtteranceRequest) (res models.DispatchResult) {
	logger := utils.GetLogger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("dispatch: handler panic",
				zap.String("intent", string(req.Intent)), zap.Any("panic", r))
			res = models.DispatchResult{Success: false, Response: fallbackResponse, ActionTaken: "error"}
		}
	}()

	result, err := d.invoke(ctx, req)
	if err != nil {
		logger.Error("dispatch: handler failed",
			zap.String("intent", string(req.Intent)),
			zap.String("patientId", req.PatientID),
			zap.Error(err))
		return models.DispatchResult{Success: false, Response: fallbackResponse, ActionTaken: "error"}
	}

	// The escalation check observes the primary handler's completion: a
	// distressed user's unrelated request must not go unnoticed, but the
	// explicit emergency path already raised its own alert.
	if req.Emotion.IsDistressSignal() {
		if isEmergency, severity := d.Emergency.DetectEmergency(req.Entities.RawText, req.Emotion); isEmergency && req.Intent != models.IntentEmergencyAlert {
			note := fmt.Sprintf("Detected %s emotion during %s", req.Emotion, req.Intent)
			if ok, _ := d.Emergency.TriggerAlert(ctx, req.PatientID, severity, note, req.Entities.RawText); !ok {
				logger.Warn("dispatch: secondary alert not persisted",
					zap.String("intent", string(req.Intent)),
					zap.String("patientId", req.PatientID))
			}
		}
	}

	return models.DispatchResult{
		Success:     result.Success,
		Response:    result.Response,
		ActionTaken: string(req.Intent),
	}
}

// invoke matches the intent against the closed handler set.
func (d *Dispatcher) invoke(ctx context.Context, req models.UtteranceRequest) (models.HandlerResult, error) {
	switch req.Intent {
	case models.IntentSetReminder:
		return d.handleReminder(ctx, req)
	case models.IntentWhoIsThis:
		return d.handleIdentity(ctx, req)
	case models.IntentEmergencyAlert:
		return d.handleEmergency(ctx, req)
	case models.IntentWhereIsObject:
		return d.handleObjectLocation(req)
	case models.IntentDailySummary:
		return d.handleDailySummary(ctx, req)
	case models.IntentSmallTalk:
		return d.handleSmallTalk(req)
	case models.IntentMemoryTraining:
		return d.handleMemoryTraining(req)
	default:
		return d.handleUnknown(req)
	}
}

// SpeakResponse forwards a response to the speech-output collaborator with
// the emotion-specific delivery parameters.
func (d *Dispatcher) SpeakResponse(text string, emotion models.Emotion) {
	if d.Speech == nil {
		return
	}
	if err := d.Speech.Speak(text, speech.DeliveryParamsFor(emotion)); err != nil {
		utils.GetLogger().Warn("dispatch: speech output failed", zap.Error(err))
	}
}
