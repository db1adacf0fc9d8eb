package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memoryaid/models"
)

func TestParseDue(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		want  time.Time
	}{
		{"24-hour clock", "2024-03-15", "15:30", time.Date(2024, 3, 15, 15, 30, 0, 0, time.Local)},
		{"12-hour clock", "2024-03-15", "09:00 AM", time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)},
		{"12-hour clock single digit", "2024-03-15", "9:05 PM", time.Date(2024, 3, 15, 21, 5, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDue(tt.date, tt.clock)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDueRejectsGarbage(t *testing.T) {
	_, err := parseDue("tomorrow", "after lunch")
	assert.Error(t, err)

	_, err = parseDue("2024-03-15", "")
	assert.Error(t, err)
}

func TestNewReminderDueTask(t *testing.T) {
	payload := models.ReminderPayload{
		ReminderID: "r1",
		PatientID:  "p1",
		Task:       "take medication",
		Time:       "09:00",
		Date:       "2024-03-15",
	}
	fireAt := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)

	task, opts, err := NewReminderDueTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeReminderDue, task.Type())
	assert.Len(t, opts, 1)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
