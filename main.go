// File: vallit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vallit/config"
	"vallit/cron"
	"vallit/database"
	appointmentRepo "vallit/database/repository/appointment"
	"vallit/handlers"
	"vallit/middleware"
	"vallit/routes"
	"vallit/services/booking"
	"vallit/services/calendar"
	"vallit/services/meeting"
	"vallit/services/notification"
	"vallit/services/tasks"
	"vallit/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	meetingService := meeting.NewZoomMeetingService(
		config.AppConfig.ZoomAccountID,
		config.AppConfig.ZoomClientID,
		config.AppConfig.ZoomClientSecret,
	)
	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
		config.AppConfig.SenderEmail,
		config.AppConfig.ContactEmail,
	)
	calendarSync := calendar.NewGoogleSyncService(
		config.AppConfig.GoogleCredentials,
		config.AppConfig.CalendarID,
	)
	reminderScheduler := tasks.NewAsynqReminderScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	appointmentService := &booking.DefaultAppointmentService{
		Repo:         apptRepo,
		MeetingSvc:   meetingService,
		Notifier:     mailer,
		CalendarSync: calendarSync,
		Reminders:    reminderScheduler,
	}

	bookingHandler := handlers.NewBookingHandler(appointmentService, logger)
	routes.SetupRoutes(router, bookingHandler)

	// Background workers and monitoring.
	cron.InitReminderWorker(mailer)
	utils.StartHealthMonitor(utils.GetReminderQueueClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Server starting on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
