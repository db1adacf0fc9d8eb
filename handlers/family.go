// File: handlers/family.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"memoryaid/services/relationship"
	"memoryaid/utils"
)

// FamilyHandler exposes the relationship directory.
type FamilyHandler struct {
	service relationship.RelationshipService
}

func NewFamilyHandler(service relationship.RelationshipService) *FamilyHandler {
	return &FamilyHandler{service: service}
}

func (h *FamilyHandler) GetFamilyMembersHandler(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing patient_id", "")
		return
	}

	members, err := h.service.GetFamilyMembers(c.Request.Context(), patientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch family members", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "members": members})
}

func (h *FamilyHandler) AddFamilyMemberHandler(c *gin.Context) {
	var req relationship.AddFamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.PatientID == "" || req.Name == "" || req.Relationship == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required fields", "patientId, name and relationship are required")
		return
	}

	ok, message := h.service.AddFamilyMember(c.Request.Context(), req)
	c.JSON(http.StatusOK, gin.H{"success": ok, "message": message})
}

func (h *FamilyHandler) GetInteractionsHandler(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing patient_id", "")
		return
	}

	limit := int64(10)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	interactions, err := h.service.GetRecentInteractions(c.Request.Context(), patientID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch interactions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "interactions": interactions})
}
