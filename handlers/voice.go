// File: handlers/voice.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	activityRepo "memoryaid/database/repository/activity"
	"memoryaid/models"
	"memoryaid/services/dispatch"
	"memoryaid/services/speech"
	"memoryaid/utils"
)

// VoiceHandler exposes the classified-utterance pipeline endpoint.
type VoiceHandler struct {
	dispatcher dispatch.DispatchService
	activities activityRepo.ActivityRepository
}

func NewVoiceHandler(dispatcher dispatch.DispatchService, activities activityRepo.ActivityRepository) *VoiceHandler {
	return &VoiceHandler{dispatcher: dispatcher, activities: activities}
}

type processUtteranceInput struct {
	Intent        string          `json:"intent" binding:"required"`
	Entities      models.Entities `json:"entities"`
	Emotion       string          `json:"emotion"`
	PatientID     string          `json:"patientId" binding:"required"`
	FaceSignature []float64       `json:"faceSignature"`
}

// ProcessUtteranceHandler accepts a classified utterance (transcription,
// emotion, intent and entities are produced upstream) and runs one dispatch
// pipeline invocation. The response carries the delivery parameters the
// device-side speech collaborator must honor for this utterance.
func (h *VoiceHandler) ProcessUtteranceHandler(c *gin.Context) {
	var input processUtteranceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req := models.UtteranceRequest{
		Intent:        models.ParseIntent(input.Intent),
		Entities:      input.Entities,
		Emotion:       models.Emotion(input.Emotion),
		PatientID:     input.PatientID,
		FaceSignature: input.FaceSignature,
	}

	result := h.dispatcher.Route(c.Request.Context(), req)

	entry := models.ActivityEntry{
		PatientID:    input.PatientID,
		ActivityType: models.ActivityVoiceCommand,
		Description:  fmt.Sprintf("%s: %s", req.Intent, input.Entities.RawText),
		Metadata: map[string]string{
			"intent":  string(req.Intent),
			"emotion": input.Emotion,
		},
	}
	if err := h.activities.Append(c.Request.Context(), entry); err != nil {
		utils.GetLogger().Warn("voice: failed to record activity",
			zap.String("patientId", input.PatientID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     result.Success,
		"intent":      req.Intent,
		"emotion":     input.Emotion,
		"response":    result.Response,
		"actionTaken": result.ActionTaken,
		"delivery":    speech.DeliveryParamsFor(req.Emotion),
	})
}
