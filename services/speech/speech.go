package speech

import "memoryaid/models"

// Engine is the speech-output collaborator. This package defines the
// delivery contract; rendering happens on the patient's device. Params apply
// to the single utterance only; implementations must not let one call's
// parameters leak into the next.
type Engine interface {
	Speak(text string, params models.DeliveryParams) error
}

// Default speech parameters, and the emotion-specific overrides.
var (
	defaultParams  = models.DeliveryParams{Rate: 150, Volume: 0.9}
	urgentParams   = models.DeliveryParams{Rate: 130, Volume: 1.0}
	soothingParams = models.DeliveryParams{Rate: 140, Volume: 0.8}
)

// DeliveryParamsFor maps the utterance emotion to delivery parameters. The
// mapping is pure: parameters are computed per call and passed explicitly,
// so unrelated subsequent speech is unaffected.
func DeliveryParamsFor(emotion models.Emotion) models.DeliveryParams {
	switch emotion {
	case models.EmotionStressed, models.EmotionEmergency:
		return urgentParams
	case models.EmotionCalm:
		return soothingParams
	default:
		return defaultParams
	}
}
