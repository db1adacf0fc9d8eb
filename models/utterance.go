// File: models/utterance.go
package models

// Intent is the classified purpose of an utterance. The set is closed:
// routing switches over these variants exhaustively, so adding an intent is
// a compile-time-checked change.
type Intent string

const (
	IntentSetReminder    Intent = "set_reminder"
	IntentWhoIsThis      Intent = "who_is_this"
	IntentEmergencyAlert Intent = "emergency_alert"
	IntentWhereIsObject  Intent = "where_is_object"
	IntentDailySummary   Intent = "daily_summary"
	IntentSmallTalk      Intent = "small_talk"
	IntentMemoryTraining Intent = "memory_training"
	IntentUnknown        Intent = "unknown"
)

// ParseIntent maps a raw classifier label to an Intent; anything outside the
// known set resolves to IntentUnknown.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentSetReminder, IntentWhoIsThis, IntentEmergencyAlert,
		IntentWhereIsObject, IntentDailySummary, IntentSmallTalk,
		IntentMemoryTraining:
		return Intent(s)
	default:
		return IntentUnknown
	}
}

// Emotion is the label produced by the upstream emotion classifier.
type Emotion string

const (
	EmotionNeutral    Emotion = "neutral"
	EmotionCalm       Emotion = "calm"
	EmotionStressed   Emotion = "stressed"
	EmotionDistressed Emotion = "distressed"
	EmotionEmergency  Emotion = "emergency"
)

// IsDistressSignal reports whether the emotion alone warrants an escalation
// check after the primary handler has run.
func (e Emotion) IsDistressSignal() bool {
	return e == EmotionStressed || e == EmotionDistressed
}

// Entities is the structured field set extracted from an utterance upstream.
type Entities struct {
	Task    string   `json:"task,omitempty"`
	Time    string   `json:"time,omitempty"` // HH:MM
	Date    string   `json:"date,omitempty"` // YYYY-MM-DD
	Object  string   `json:"object,omitempty"`
	Persons []string `json:"persons,omitempty"`
	RawText string   `json:"rawText,omitempty"`
}

// UtteranceRequest is the dispatcher's input tuple: one classified utterance.
type UtteranceRequest struct {
	Intent        Intent    `json:"intent"`
	Entities      Entities  `json:"entities"`
	Emotion       Emotion   `json:"emotion"`
	PatientID     string    `json:"patientId"`
	FaceSignature []float64 `json:"faceSignature,omitempty"`
}

// HandlerResult is what an individual intent handler produces.
type HandlerResult struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// DispatchResult is the outcome of one full pipeline invocation.
type DispatchResult struct {
	Success     bool   `json:"success"`
	Response    string `json:"response"`
	ActionTaken string `json:"actionTaken"`
}
