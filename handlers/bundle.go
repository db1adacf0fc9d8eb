// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Voice pipeline endpoint.
	ProcessUtteranceHandler gin.HandlerFunc

	// Reminder endpoints.
	GetRemindersHandler      gin.HandlerFunc
	CreateReminderHandler    gin.HandlerFunc
	CompleteReminderHandler  gin.HandlerFunc
	DeleteReminderHandler    gin.HandlerFunc
	UpcomingRemindersHandler gin.HandlerFunc
	MissedRemindersHandler   gin.HandlerFunc

	// Family directory endpoints.
	GetFamilyMembersHandler gin.HandlerFunc
	AddFamilyMemberHandler  gin.HandlerFunc
	GetInteractionsHandler  gin.HandlerFunc

	// Alert endpoints.
	GetAlertsHandler    gin.HandlerFunc
	ResolveAlertHandler gin.HandlerFunc

	// Activity endpoint.
	GetActivityHandler gin.HandlerFunc
}
