package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lastmile/cmd"
	inhttp "lastmile/internal/adapters/in/http"
	"lastmile/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := loadConfig(logger)

	gormDB, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		logger.Error("could not run migrations", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("could not build application", "error", err)
		os.Exit(1)
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("could not start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	inhttp.NewServer(root.Envelope(), root.MetricsRegistry()).RegisterRoutes(e)

	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if serveErr := e.Start(address); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("http server stopped", "error", serveErr)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}

	jobManager.StopAll()
	root.Envelope().Wait()
}

func loadConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort: envOr("HTTP_PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		GeoAPIKey:     os.Getenv("GEO_API_KEY"),
		GeoBaseURL:    os.Getenv("GEO_BASE_URL"),
		TravelBaseURL: os.Getenv("TRAVEL_BASE_URL"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envIntOr("SMTP_PORT", 587),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_FROM"),
		TwilioBaseURL:    os.Getenv("TWILIO_BASE_URL"),

		AIAPIKey:  os.Getenv("AI_API_KEY"),
		AIModel:   envOr("AI_MODEL", "gpt-4o-mini"),
		AIBaseURL: os.Getenv("AI_BASE_URL"),

		AuthorityContact:  os.Getenv("AUTHORITY_CONTACT"),
		PrepMarginMinutes: envIntOr("PREP_MARGIN_MINUTES", 5),
		AuditWritePolicy:  envOr("AUDIT_WRITE_POLICY", "sync"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
