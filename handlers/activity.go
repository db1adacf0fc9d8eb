// File: handlers/activity.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	activityRepo "memoryaid/database/repository/activity"
	"memoryaid/utils"
)

// ActivityHandler exposes the caregiver-facing activity feed.
type ActivityHandler struct {
	activities activityRepo.ActivityRepository
}

func NewActivityHandler(activities activityRepo.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

func (h *ActivityHandler) GetActivityHandler(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing patient_id", "")
		return
	}

	entries, err := h.activities.GetRecent(c.Request.Context(), patientID, 50)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch activity log", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "activities": entries})
}
