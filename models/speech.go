// File: models/speech.go
package models

// DeliveryParams are the speech-output parameters for a single utterance.
// They are computed per call and passed explicitly; the output collaborator
// must not carry them over to subsequent speech.
type DeliveryParams struct {
	Rate   int     `json:"rate"`   // words per minute
	Volume float64 `json:"volume"` // 0.0 .. 1.0
}
