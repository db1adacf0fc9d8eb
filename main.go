// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memoryaid/config"
	"memoryaid/cron"
	"memoryaid/database"
	activityRepoPkg "memoryaid/database/repository/activity"
	alertRepoPkg "memoryaid/database/repository/alert"
	caregiverRepoPkg "memoryaid/database/repository/caregiver"
	familyRepoPkg "memoryaid/database/repository/family"
	reminderRepoPkg "memoryaid/database/repository/reminder"
	"memoryaid/handlers"
	"memoryaid/middleware"
	"memoryaid/routes"
	"memoryaid/services/dispatch"
	"memoryaid/services/emergency"
	"memoryaid/services/notification"
	"memoryaid/services/relationship"
	"memoryaid/services/reminder"
	"memoryaid/services/tasks"
	"memoryaid/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	remRepo := reminderRepoPkg.NewMongoReminderRepo()
	famRepo := familyRepoPkg.NewMongoFamilyRepo()
	alRepo := alertRepoPkg.NewMongoAlertRepo()
	cgRepo := caregiverRepoPkg.NewMongoCaregiverRepo()
	actRepo := activityRepoPkg.NewMongoActivityRepo()

	// reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	reminderService := &reminder.DefaultReminderService{
		Repo:      remRepo,
		Scheduler: &tasks.AsynqReminderScheduler{Client: asynqClient},
	}
	relationshipService := &relationship.DefaultRelationshipService{
		Repo:    famRepo,
		Matcher: relationship.EuclideanMatcher{},
	}
	emergencyService := &emergency.DefaultEmergencyService{
		Alerts:     alRepo,
		Caregivers: cgRepo,
		Notifier:   notification.NewSMTPNotificationService(),
	}
	dispatcher := &dispatch.Dispatcher{
		Reminders:     reminderService,
		Relationships: relationshipService,
		Emergency:     emergencyService,
	}

	// handlers.
	voiceHandler := handlers.NewVoiceHandler(dispatcher, actRepo)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	familyHandler := handlers.NewFamilyHandler(relationshipService)
	alertHandler := handlers.NewAlertHandler(emergencyService)
	activityHandler := handlers.NewActivityHandler(actRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProcessUtteranceHandler: voiceHandler.ProcessUtteranceHandler,

		GetRemindersHandler:      reminderHandler.GetRemindersHandler,
		CreateReminderHandler:    reminderHandler.CreateReminderHandler,
		CompleteReminderHandler:  reminderHandler.CompleteReminderHandler,
		DeleteReminderHandler:    reminderHandler.DeleteReminderHandler,
		UpcomingRemindersHandler: reminderHandler.UpcomingRemindersHandler,
		MissedRemindersHandler:   reminderHandler.MissedRemindersHandler,

		GetFamilyMembersHandler: familyHandler.GetFamilyMembersHandler,
		AddFamilyMemberHandler:  familyHandler.AddFamilyMemberHandler,
		GetInteractionsHandler:  familyHandler.GetInteractionsHandler,

		GetAlertsHandler:    alertHandler.GetAlertsHandler,
		ResolveAlertHandler: alertHandler.ResolveAlertHandler,

		GetActivityHandler: activityHandler.GetActivityHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the due-reminder worker.
	cron.InitReminderWorker(actRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
