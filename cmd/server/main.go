package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"lineupboard/config"
	_ "lineupboard/docs"
	"lineupboard/internal/adapters/auth"
	"lineupboard/internal/adapters/email"
	delivery "lineupboard/internal/delivery/http"
	"lineupboard/internal/delivery/http/controllers"
	"lineupboard/internal/delivery/http/middleware"
	"lineupboard/internal/domain"
	"lineupboard/internal/repository/postgres"
	"lineupboard/internal/services"
)

// @title Lineup Board API
// @version 1.0
// @description Scheduling service for event night lineups. Artists are placed
// @description into time slots on stages; the schedule wraps past midnight.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	grid := domain.GridConfig{
		StartHour:   cfg.GridStartHour,
		EndHour:     cfg.GridEndHour,
		StepMinutes: cfg.GridStepMinutes,
	}

	lineupService := services.NewLineupService(
		postgres.NewEventRepository(db),
		postgres.NewStageRepository(db),
		postgres.NewAssignmentRepository(db),
		postgres.NewArtistRoster(db),
		mailer,
		email.NewLineupRenderer(),
		grid,
		10*time.Second,
	)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	lineupController := controllers.NewLineupController(logger, lineupService)

	mux := delivery.NewRouter(lineupController, verifier, logger)
	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.LoggingMiddleware(logger,
			middleware.RequestID(mux)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
