// File: lansdowne360/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lansdowne360/config"
	"lansdowne360/cron"
	"lansdowne360/database"
	"lansdowne360/database/repository"
	"lansdowne360/handlers"
	"lansdowne360/middleware"
	"lansdowne360/models"
	"lansdowne360/routes"
	"lansdowne360/services/booking"
	"lansdowne360/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reservationRepo := repository.NewGormReservationRepo(database.DB)
	settingRepo := repository.NewGormSettingRepo(database.DB)
	roomRepo := repository.NewGormRoomRepo(database.DB)
	adminRepo := repository.NewGormAdminUserRepo(database.DB)

	bootstrapAdmin(adminRepo)

	// Queue client for webhook-driven booking sync.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	cron.InitBookingSyncWorker(reservationRepo)

	// services.
	bookingEngine := &booking.DefaultBookingEngine{
		SettingsRepo:    settingRepo,
		ReservationRepo: reservationRepo,
		CacheClient:     utils.GetCacheClient(),
	}

	bookingHandler := handlers.NewBookingHandler(bookingEngine, logger)
	adminHandler := handlers.NewAdminHandler(adminRepo, reservationRepo, roomRepo, settingRepo)
	webhookHandler := handlers.NewWebhookHandler(settingRepo, queueClient, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CheckAvailability: bookingHandler.CheckAvailabilityHandler,
		CreateBooking:     bookingHandler.CreateBookingHandler,
		GetBooking:        bookingHandler.GetBookingHandler,
		CancelBooking:     bookingHandler.CancelBookingHandler,

		EzeeWebhook: webhookHandler.EzeeWebhookHandler,

		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

// bootstrapAdmin creates the initial back-office account from the
// environment when none exists yet.
func bootstrapAdmin(adminRepo repository.AdminUserRepository) {
	logger := utils.GetLogger()
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	existing, err := adminRepo.GetByEmail(email)
	if err != nil {
		logger.Sugar().Warnf("main: failed to check for admin account: %v", err)
		return
	}
	if existing != nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Sugar().Warnf("main: failed to hash admin password: %v", err)
		return
	}
	if err := adminRepo.Create(&models.AdminUser{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
	}); err != nil {
		logger.Sugar().Warnf("main: failed to create admin account: %v", err)
		return
	}
	logger.Sugar().Infof("main: created initial admin account %s", email)
}
