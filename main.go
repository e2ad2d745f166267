package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/HSouheill/inquiry_backend/config"
	"github.com/HSouheill/inquiry_backend/controllers"
	"github.com/HSouheill/inquiry_backend/middleware"
	"github.com/HSouheill/inquiry_backend/repositories"
	"github.com/HSouheill/inquiry_backend/routes"
	"github.com/HSouheill/inquiry_backend/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := config.NewLogger(cfg.Log)
	if envErr != nil {
		logger.Warn(".env file not found")
	}
	for _, problem := range cfg.Validate() {
		logger.WithField("problem", problem).Warn("Invalid configuration")
	}

	// Connect to database
	client, err := config.ConnectDB(cfg.Mongo, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize MongoDB")
	}

	// Redis is optional; without it codes live in this process only
	redisClient := config.ConnectRedis(cfg.Redis, logger)
	var otpStore repositories.OTPStore
	otpStoreName := "memory"
	if redisClient != nil {
		otpStore = repositories.NewRedisOTPStore(redisClient, cfg.OTP.TTL)
		otpStoreName = "redis"
	} else {
		otpStore = repositories.NewMemoryOTPStore(cfg.OTP.TTL)
	}

	inquiryRepo := repositories.NewInquiryRepository(config.GetCollection(client, cfg.Mongo, config.InquiriesCollection))
	mailer := services.NewSMTPMailer(cfg.Mail)
	inquiryService := services.NewInquiryService(otpStore, mailer, inquiryRepo, logger)

	inquiryController := controllers.NewInquiryController(inquiryService, logger, cfg.Server.RequestTimeout)
	healthController := controllers.NewHealthController(client, otpStoreName)

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger, cfg.Server)

	routes.SetupRoutes(e, inquiryController, healthController)

	// Start server
	go func() {
		logger.WithFields(logrus.Fields{
			"port":     cfg.Server.Port,
			"otpStore": otpStoreName,
		}).Info("Server running")
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.WithError(err).Warn("Failed to disconnect from MongoDB")
	}
	config.CloseRedis(redisClient)

	logger.Info("Server exited")
}
