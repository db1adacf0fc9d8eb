// File: handlers/reminders.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"memoryaid/models"
	"memoryaid/services/reminder"
	"memoryaid/utils"
)

// ReminderHandler exposes reminder CRUD for the caregiver dashboard.
type ReminderHandler struct {
	service reminder.ReminderService
}

func NewReminderHandler(service reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

func (h *ReminderHandler) GetRemindersHandler(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing patient_id", "")
		return
	}

	reminders, err := h.service.GetReminders(c.Request.Context(), patientID, c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reminders": reminders})
}

type createReminderInput struct {
	PatientID string `json:"patientId" binding:"required"`
	Task      string `json:"task"`
	Time      string `json:"time"`
	Date      string `json:"date"`
}

func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	var input createReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	entities := models.Entities{Task: input.Task, Time: input.Time, Date: input.Date}
	created, message := h.service.CreateReminder(c.Request.Context(), entities, input.PatientID)

	c.JSON(http.StatusOK, gin.H{
		"success":  created != nil,
		"reminder": created,
		"message":  message,
	})
}

func (h *ReminderHandler) CompleteReminderHandler(c *gin.Context) {
	ok, message := h.service.MarkCompleted(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": ok, "message": message})
}

func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	ok, message := h.service.DeleteReminder(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": ok, "message": message})
}

func (h *ReminderHandler) UpcomingRemindersHandler(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing patient_id", "")
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	reminders, err := h.service.GetUpcomingReminders(c.Request.Context(), patientID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch upcoming reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reminders": reminders})
}

func (h *ReminderHandler) MissedRemindersHandler(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing patient_id", "")
		return
	}

	reminders, err := h.service.GetMissedReminders(c.Request.Context(), patientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch missed reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reminders": reminders})
}
