// File: handlers/alerts.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memoryaid/services/emergency"
	"memoryaid/utils"
)

// AlertHandler exposes alert listing and resolution for caregivers.
type AlertHandler struct {
	service emergency.EmergencyService
}

func NewAlertHandler(service emergency.EmergencyService) *AlertHandler {
	return &AlertHandler{service: service}
}

func (h *AlertHandler) GetAlertsHandler(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing patient_id", "")
		return
	}

	alerts, err := h.service.GetActiveAlerts(c.Request.Context(), patientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch alerts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alerts": alerts})
}

type resolveAlertInput struct {
	ResolvedBy string `json:"resolvedBy"`
}

func (h *AlertHandler) ResolveAlertHandler(c *gin.Context) {
	var input resolveAlertInput
	// Body is optional; resolvedBy may be absent.
	_ = c.ShouldBindJSON(&input)

	ok := h.service.ResolveAlert(c.Request.Context(), c.Param("id"), input.ResolvedBy)
	c.JSON(http.StatusOK, gin.H{"success": ok})
}
