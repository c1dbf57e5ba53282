package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-task-scheduler/config"
	_ "calendar-task-scheduler/docs" // Swagger docs
	"calendar-task-scheduler/internal/httpserver"
	taskHTTP "calendar-task-scheduler/internal/task/delivery/http"
	"calendar-task-scheduler/internal/task/usecase"
	"calendar-task-scheduler/pkg/datemath"
	"calendar-task-scheduler/pkg/extractor"
	"calendar-task-scheduler/pkg/gcalendar"
	"calendar-task-scheduler/pkg/log"
)

// @title       Calendar Task Scheduler API
// @description Extracts dated tasks from free-form text and schedules them on Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math & extraction pipeline
	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	ext := extractor.New(
		extractor.WithLocation(dateMathParser.Location()),
		extractor.WithLogger(logger),
	)

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run ./cmd/extract auth` to generate token.json")
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "google_calendar.credentials_path is empty: scheduling disabled")
	}

	// 5. Task domain
	taskUC := usecase.New(logger, ext, calendarClient, dateMathParser, usecase.Config{
		MaxInputBytes: cfg.Extractor.MaxInputBytes,
		CacheSize:     cfg.Extractor.CacheSize,
		CacheTTL:      cfg.Extractor.CacheTTL,
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		Timezone:      dateMathParser.Location().String(),
		EventHour:     cfg.GoogleCalendar.EventHour,
		EventDuration: time.Duration(cfg.GoogleCalendar.EventDurationMinutes) * time.Minute,
	})
	taskHandler := taskHTTP.New(logger, taskUC, int64(cfg.Extractor.MaxInputBytes))

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		TaskHandler:     taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
