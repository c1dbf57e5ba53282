package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"calendar-task-scheduler/config"
	"calendar-task-scheduler/internal/model"
	"calendar-task-scheduler/internal/task"
	"calendar-task-scheduler/internal/task/usecase"
	"calendar-task-scheduler/pkg/datemath"
	"calendar-task-scheduler/pkg/extractor"
	"calendar-task-scheduler/pkg/gcalendar"
	"calendar-task-scheduler/pkg/log"
)

// scheduledTaskOutput is the JSON shape printed for --schedule.
type scheduledTaskOutput struct {
	extractor.Task
	EventID   string `json:"event_id,omitempty"`
	EventLink string `json:"event_link,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logs go to stderr so stdout stays valid JSON.
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		Output:   cmd.ErrOrStderr(),
	})

	text, err := readInput(cmd.InOrStdin(), inputFile)
	if err != nil {
		return err
	}

	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	ext := extractor.New(
		extractor.WithLocation(dateMathParser.Location()),
		extractor.WithLogger(logger),
	)

	var calendarClient usecase.CalendarClient
	if schedule {
		if cfg.GoogleCalendar.CredentialsPath == "" {
			return task.ErrCalendarNotConfigured
		}
		c, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			return fmt.Errorf("google calendar: %w", err)
		}
		calendarClient = c
	}

	uc := usecase.New(logger, ext, calendarClient, dateMathParser, usecase.Config{
		MaxInputBytes: cfg.Extractor.MaxInputBytes,
		CacheSize:     1,
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		Timezone:      dateMathParser.Location().String(),
		EventHour:     cfg.GoogleCalendar.EventHour,
		EventDuration: time.Duration(cfg.GoogleCalendar.EventDurationMinutes) * time.Minute,
	})

	sc := model.Scope{RequestID: uuid.NewString(), Source: model.SourceCLI}
	ctx = log.WithRequestID(ctx, sc.RequestID)

	if !schedule {
		out, err := uc.Extract(ctx, sc, task.ExtractInput{Text: text})
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), out.Tasks)
	}

	out, err := uc.Schedule(ctx, sc, task.ScheduleInput{Text: text, CalendarID: calendarID})
	if err != nil {
		return err
	}
	logger.Infof(ctx, "Scheduled %d of %d tasks", out.Scheduled, out.Count)

	results := make([]scheduledTaskOutput, 0, len(out.Tasks))
	for _, st := range out.Tasks {
		results = append(results, scheduledTaskOutput{
			Task:      st.Task,
			EventID:   st.EventID,
			EventLink: st.EventLink,
			Error:     st.Error,
		})
	}
	return writeJSON(cmd.OutOrStdout(), results)
}

// readInput reads the whole input from path, or from stdin when path is empty.
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
