package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ong-backend/config"
	_ "ong-backend/docs" // Important for Swagger
	v1 "ong-backend/internal/delivery/http/v1"
	"ong-backend/internal/usecase"
	"ong-backend/pkg/email"
	"ong-backend/pkg/logger"
	"ong-backend/pkg/validation"
)

// @title           ONG Intake API
// @version         1.0
// @description     Help-request intake and email notification service.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting ong intake backend", "port", cfg.Port)

	// 3. Setup Email Service
	emailService := email.NewEmailService(email.Options{
		To:       cfg.MailTo,
		From:     cfg.MailFrom,
		Simulate: cfg.MailSimulate,
	}, newTransport(cfg), email.NewOutbox(cfg.MailSimulateDir), logger.Log)
	if cfg.MailSimulate {
		logger.Log.Warn("Mail simulation enabled - notifications are written to disk", "dir", cfg.MailSimulateDir)
	}

	// 4. Setup UseCases
	submissionUC := usecase.NewSubmissionUsecase(emailService, validation.New(), logger.Log)
	healthUC := usecase.NewHealthUsecase(emailService)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		HealthUC:     healthUC,
		Logger:       logger.Log,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newTransport(cfg *config.Config) email.Transport {
	if cfg.MailProvider == config.ProviderResend {
		return email.NewResendTransport(cfg.ResendAPIKey)
	}
	return email.NewSMTPTransport(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})
}
