package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"memoryaid/models"
)

func TestDeliveryParamsFor(t *testing.T) {
	tests := []struct {
		emotion models.Emotion
		want    models.DeliveryParams
	}{
		{models.EmotionStressed, models.DeliveryParams{Rate: 130, Volume: 1.0}},
		{models.EmotionEmergency, models.DeliveryParams{Rate: 130, Volume: 1.0}},
		{models.EmotionCalm, models.DeliveryParams{Rate: 140, Volume: 0.8}},
		{models.EmotionNeutral, models.DeliveryParams{Rate: 150, Volume: 0.9}},
		{models.EmotionDistressed, models.DeliveryParams{Rate: 150, Volume: 0.9}},
		{models.Emotion("unlabeled"), models.DeliveryParams{Rate: 150, Volume: 0.9}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeliveryParamsFor(tt.emotion), string(tt.emotion))
	}
}

func TestDeliveryParamsArePerCall(t *testing.T) {
	first := DeliveryParamsFor(models.EmotionEmergency)
	second := DeliveryParamsFor(models.EmotionNeutral)

	// An urgent utterance must not change how the next one is delivered.
	assert.Equal(t, models.DeliveryParams{Rate: 130, Volume: 1.0}, first)
	assert.Equal(t, models.DeliveryParams{Rate: 150, Volume: 0.9}, second)
}
