package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"memoryaid/handlers"
)

// RegisterVoiceRoutes registers the classified-utterance pipeline endpoint.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/voice")
	{
		api.POST("/process", hb.ProcessUtteranceHandler)
	}
}

// RegisterReminderRoutes registers reminder management endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.GET("", hb.GetRemindersHandler)
		api.POST("", hb.CreateReminderHandler)
		api.GET("/upcoming", hb.UpcomingRemindersHandler)
		api.GET("/missed", hb.MissedRemindersHandler)
		api.POST("/:id/complete", hb.CompleteReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterFamilyRoutes registers relationship directory endpoints.
func RegisterFamilyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/family-members")
	{
		api.GET("", hb.GetFamilyMembersHandler)
		api.POST("", hb.AddFamilyMemberHandler)
	}
	r.GET("/api/interactions", hb.GetInteractionsHandler)
}

// RegisterAlertRoutes registers alert listing and resolution endpoints.
func RegisterAlertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/alerts")
	{
		api.GET("", hb.GetAlertsHandler)
		api.POST("/:id/resolve", hb.ResolveAlertHandler)
	}
}

// RegisterActivityRoutes registers the activity feed endpoint.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/activity", hb.GetActivityHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Memory Aid Backend is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterVoiceRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterFamilyRoutes(r, hb)
	RegisterAlertRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
}
