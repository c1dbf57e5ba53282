package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"calendar-task-scheduler/internal/model"
	"calendar-task-scheduler/internal/task"
	"calendar-task-scheduler/pkg/extractor"
	"calendar-task-scheduler/pkg/gcalendar"
	"calendar-task-scheduler/pkg/metrics"
)

// maxConcurrentEvents bounds in-flight Calendar API calls per Schedule.
const maxConcurrentEvents = 4

// Schedule extracts tasks and creates one calendar event per task.
// A failed event is reported on its task and does not stop the others.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input task.ScheduleInput) (task.ScheduleOutput, error) {
	if uc.calendar == nil {
		return task.ScheduleOutput{}, task.ErrCalendarNotConfigured
	}
	if strings.TrimSpace(input.Text) == "" {
		return task.ScheduleOutput{}, task.ErrEmptyInput
	}

	tasks, err := uc.extract(ctx, sc, input.Text)
	if err != nil {
		return task.ScheduleOutput{}, err
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}

	out := task.ScheduleOutput{
		Tasks: make([]task.ScheduledTask, len(tasks)),
		Count: len(tasks),
	}

	// Each goroutine owns one slot of out.Tasks, so source order is kept.
	var g errgroup.Group
	g.SetLimit(maxConcurrentEvents)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			out.Tasks[i] = uc.scheduleTask(ctx, calendarID, t)
			return nil
		})
	}
	_ = g.Wait()

	for _, st := range out.Tasks {
		if st.Error == "" {
			out.Scheduled++
		}
	}

	uc.l.Infof(ctx, "Schedule: calendar=%s tasks=%d scheduled=%d", calendarID, out.Count, out.Scheduled)
	return out, nil
}

func (uc *implUseCase) scheduleTask(ctx context.Context, calendarID string, t extractor.Task) task.ScheduledTask {
	scheduled := task.ScheduledTask{Task: t}

	event, err := uc.createEvent(ctx, calendarID, t)
	if err != nil {
		uc.l.Warnf(ctx, "Schedule: calendar event creation failed for %q: %v", t.Task, err)
		metrics.CalendarEvents.WithLabelValues("failed").Inc()
		scheduled.Error = err.Error()
		return scheduled
	}

	metrics.CalendarEvents.WithLabelValues("created").Inc()
	scheduled.EventID = event.ID
	scheduled.EventLink = event.HtmlLink
	return scheduled
}

func (uc *implUseCase) createEvent(ctx context.Context, calendarID string, t extractor.Task) (*gcalendar.Event, error) {
	due, err := time.ParseInLocation(extractor.DueDateLayout, t.DueDate, uc.dateMath.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: %w", t.DueDate, err)
	}

	start := uc.dateMath.At(due, uc.cfg.EventHour)

	return uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     eventSummary(t),
		Description: eventDescription(t),
		StartTime:   start,
		EndTime:     start.Add(uc.cfg.EventDuration),
		Timezone:    uc.cfg.Timezone,
		Reminders:   defaultReminders,
	})
}
