package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MightyBhargava/LegalChain-sub001/internal/application/notifications"
	"github.com/MightyBhargava/LegalChain-sub001/internal/application/reminders"
	"github.com/MightyBhargava/LegalChain-sub001/internal/config"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/ai"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/dynamo"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/google"
	jwtinfra "github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/jwt"
	s3infra "github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/s3"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/smtp"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/sns"
	transporthttp "github.com/MightyBhargava/LegalChain-sub001/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for invoice downloads.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer for reminder fallback delivery.
	mailer := smtp.NewMailer(cfg)

	// SNS push sender (optional — graceful fallback).
	var pushSender sns.PushSender
	if sender, err := sns.NewSender(cfg); err == nil {
		pushSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	userRepo := dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)
	deviceRepo := dynamo.NewDeviceRepo(dynamoClient, cfg.DynamoTables.Devices)
	registries := transporthttp.NewRegistries()

	deps := &transporthttp.Deps{
		UserRepo:       userRepo,
		SessionRepo:    dynamo.NewSessionRepo(dynamoClient, cfg.DynamoTables.Sessions),
		DeviceRepo:     deviceRepo,
		PreferenceRepo: dynamo.NewPreferenceRepo(dynamoClient, cfg.DynamoTables.Preferences),
		S3Store:        s3Store,
		AIClient:       ai.NewClient(cfg),
		GoogleVerifier: google.NewVerifier(cfg.GoogleClientID),
		JWTProvider:    jwtProvider,
		Registries:     registries,
	}

	router := transporthttp.NewRouter(cfg, deps)

	// Hearing reminder dispatcher, ticking in the background until shutdown.
	// In-app and email reminders run even when SNS is down.
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	defer stopDispatcher()
	dispatcherDeps := reminders.DispatcherDeps{
		Hearings: registries.Hearings,
		Users:    userRepo,
		Devices:  deviceRepo,
		Mailer:   mailer,
		Notifier: notifications.NewService(registries.Notifications),
	}
	if pushSender != nil {
		dispatcherDeps.Push = pushSender
	}
	go reminders.NewDispatcher(dispatcherDeps).Start(dispatcherCtx, cfg.ReminderInterval)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopDispatcher()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
