package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memoryaid/models"
)

type fakeDispatcher struct {
	result  models.DispatchResult
	lastReq models.UtteranceRequest
	calls   int
}

func (f *fakeDispatcher) Route(_ context.Context, req models.UtteranceRequest) models.DispatchResult {
	f.calls++
	f.lastReq = req
	return f.result
}

type fakeActivityRepo struct {
	entries []models.ActivityEntry
}

func (f *fakeActivityRepo) Append(_ context.Context, entry models.ActivityEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeActivityRepo) GetRecent(_ context.Context, patientID string, limit int64) ([]models.ActivityEntry, error) {
	var out []models.ActivityEntry
	for _, e := range f.entries {
		if e.PatientID == patientID {
			out = append(out, e)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newVoiceRouter(dispatcher *fakeDispatcher, activities *fakeActivityRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewVoiceHandler(dispatcher, activities)
	r.POST("/api/voice/process", h.ProcessUtteranceHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProcessUtterance(t *testing.T) {
	dispatcher := &fakeDispatcher{result: models.DispatchResult{
		Success:     true,
		Response:    "Reminder set for medication at 09:00 on 2024-03-15.",
		ActionTaken: "set_reminder",
	}}
	activities := &fakeActivityRepo{}
	r := newVoiceRouter(dispatcher, activities)

	w := postJSON(t, r, "/api/voice/process", gin.H{
		"intent":    "set_reminder",
		"emotion":   "calm",
		"patientId": "p1",
		"entities": gin.H{
			"task":    "medication",
			"time":    "09:00",
			"rawText": "remind me to take my medication at 9",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success     bool                  `json:"success"`
		Intent      string                `json:"intent"`
		Emotion     string                `json:"emotion"`
		Response    string                `json:"response"`
		ActionTaken string                `json:"actionTaken"`
		Delivery    models.DeliveryParams `json:"delivery"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "set_reminder", body.Intent)
	assert.Equal(t, "Reminder set for medication at 09:00 on 2024-03-15.", body.Response)
	assert.Equal(t, "set_reminder", body.ActionTaken)
	// Calm emotion maps to soothing delivery.
	assert.Equal(t, models.DeliveryParams{Rate: 140, Volume: 0.8}, body.Delivery)

	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, models.IntentSetReminder, dispatcher.lastReq.Intent)
	assert.Equal(t, "medication", dispatcher.lastReq.Entities.Task)

	// The command lands in the caregiver activity feed.
	require.Len(t, activities.entries, 1)
	assert.Equal(t, models.ActivityVoiceCommand, activities.entries[0].ActivityType)
	assert.Equal(t, "set_reminder: remind me to take my medication at 9", activities.entries[0].Description)
}

func TestProcessUtteranceUnknownIntentLabel(t *testing.T) {
	dispatcher := &fakeDispatcher{result: models.DispatchResult{
		Success:     false,
		Response:    "I'm not sure I understood that. Could you say it again?",
		ActionTaken: "unknown",
	}}
	r := newVoiceRouter(dispatcher, &fakeActivityRepo{})

	w := postJSON(t, r, "/api/voice/process", gin.H{
		"intent":    "order_pizza",
		"patientId": "p1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.IntentUnknown, dispatcher.lastReq.Intent)
}

func TestProcessUtteranceRejectsMissingFields(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	r := newVoiceRouter(dispatcher, &fakeActivityRepo{})

	w := postJSON(t, r, "/api/voice/process", gin.H{"intent": "set_reminder"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, dispatcher.calls)
}
