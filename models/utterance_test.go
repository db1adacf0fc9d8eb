package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	assert.Equal(t, IntentSetReminder, ParseIntent("set_reminder"))
	assert.Equal(t, IntentEmergencyAlert, ParseIntent("emergency_alert"))
	assert.Equal(t, IntentUnknown, ParseIntent("unknown"))
	assert.Equal(t, IntentUnknown, ParseIntent("order_pizza"))
	assert.Equal(t, IntentUnknown, ParseIntent(""))
	// Labels are case-sensitive.
	assert.Equal(t, IntentUnknown, ParseIntent("Set_Reminder"))
}

func TestIsDistressSignal(t *testing.T) {
	assert.True(t, EmotionStressed.IsDistressSignal())
	assert.True(t, EmotionDistressed.IsDistressSignal())
	assert.False(t, EmotionCalm.IsDistressSignal())
	assert.False(t, EmotionNeutral.IsDistressSignal())
	assert.False(t, EmotionEmergency.IsDistressSignal())
}
