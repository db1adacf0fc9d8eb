package emergency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"memoryaid/models"
)

func TestDetectEmergencyCriticalKeywords(t *testing.T) {
	svc := &DefaultEmergencyService{}

	tests := []struct {
		name       string
		transcript string
		emotion    models.Emotion
	}{
		{name: "ambulance", transcript: "call an AMBULANCE now", emotion: models.EmotionCalm},
		{name: "hurt mid-sentence", transcript: "I think I hurt my arm", emotion: models.EmotionNeutral},
		{name: "fallen", transcript: "grandma has Fallen in the kitchen", emotion: models.EmotionCalm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isEmergency, severity := svc.DetectEmergency(tt.transcript, tt.emotion)
			assert.True(t, isEmergency)
			assert.Equal(t, models.SeverityCritical, severity)
		})
	}
}

func TestDetectEmergencyTierOrder(t *testing.T) {
	svc := &DefaultEmergencyService{}

	// "scared" is a high keyword but "pain" sits in the critical tier, which
	// is evaluated first.
	isEmergency, severity := svc.DetectEmergency("I'm scared and in pain", models.EmotionNeutral)
	assert.True(t, isEmergency)
	assert.Equal(t, models.SeverityCritical, severity)

	isEmergency, severity = svc.DetectEmergency("I feel dizzy and a bit sick", models.EmotionNeutral)
	assert.True(t, isEmergency)
	assert.Equal(t, models.SeverityHigh, severity)

	isEmergency, severity = svc.DetectEmergency("I'm a little worried", models.EmotionNeutral)
	assert.True(t, isEmergency)
	assert.Equal(t, models.SeverityMedium, severity)
}

func TestDetectEmergencyEmotionFallback(t *testing.T) {
	svc := &DefaultEmergencyService{}

	isEmergency, severity := svc.DetectEmergency("I want to water the plants", models.EmotionDistressed)
	assert.True(t, isEmergency)
	assert.Equal(t, models.SeverityMedium, severity)

	isEmergency, severity = svc.DetectEmergency("I want to water the plants", models.EmotionStressed)
	assert.True(t, isEmergency)
	assert.Equal(t, models.SeverityMedium, severity)
}

func TestDetectEmergencyNoSignal(t *testing.T) {
	svc := &DefaultEmergencyService{}

	isEmergency, severity := svc.DetectEmergency("what a lovely morning", models.EmotionCalm)
	assert.False(t, isEmergency)
	assert.Equal(t, models.Severity(""), severity)
}
