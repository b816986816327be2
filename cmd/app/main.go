package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Bal1m/FitnessCenterProject/docs"
	"github.com/Bal1m/FitnessCenterProject/internal/auth"
	"github.com/Bal1m/FitnessCenterProject/internal/config"
	"github.com/Bal1m/FitnessCenterProject/internal/db"
	"github.com/Bal1m/FitnessCenterProject/internal/email"
	"github.com/Bal1m/FitnessCenterProject/internal/gym"
	"github.com/Bal1m/FitnessCenterProject/internal/logger"
	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
	"github.com/Bal1m/FitnessCenterProject/internal/server"
	"github.com/Bal1m/FitnessCenterProject/internal/user"
)

// @title Fitness Center API
// @version 1.0
// @description API for gym appointment scheduling: services, trainers, bookings and workout recommendations.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting Fitness Center application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	if err := seedAdmin(context.Background(), user.NewRepository(database), cfg); err != nil {
		logger.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedGymSettings(context.Background(), gym.NewRepository(database), cfg); err != nil {
		logger.Fatalf("Failed to seed gym settings: %v", err)
	}

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()
	logger.Info("Email service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emailService.Start(ctx)

	srv := server.New(database, cfg, emailService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// seedAdmin creates the initial admin account when ADMIN_PASSWORD is
// set and the email is not taken yet.
func seedAdmin(ctx context.Context, users user.Repository, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	exists, err := users.EmailExists(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	if _, err := users.Create(ctx, "Administrator", cfg.AdminEmail, passwordHash, user.RoleAdmin); err != nil {
		return err
	}

	logger.Infof("Seeded admin user %s", cfg.AdminEmail)
	return nil
}

// seedGymSettings inserts the gym profile row on first startup; an
// existing row is left untouched so admin edits persist.
func seedGymSettings(ctx context.Context, settings gym.Repository, cfg *config.Config) error {
	openTime, err := schedule.ParseTimeOfDay(cfg.GymOpenTime)
	if err != nil {
		return err
	}
	closeTime, err := schedule.ParseTimeOfDay(cfg.GymCloseTime)
	if err != nil {
		return err
	}

	return settings.EnsureDefaults(ctx, &gym.Settings{
		GymName:   cfg.GymName,
		OpenTime:  openTime,
		CloseTime: closeTime,
	})
}
