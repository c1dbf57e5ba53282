package task

import "calendar-task-scheduler/pkg/extractor"

// ExtractInput is the input for task extraction.
type ExtractInput struct {
	Text string
}

// ExtractOutput is the result of task extraction, in source order.
type ExtractOutput struct {
	Tasks []extractor.Task
	Count int
}

// ScheduleInput is the input for scheduling extracted tasks.
type ScheduleInput struct {
	Text       string
	CalendarID string // optional, defaults to the configured calendar
}

// ScheduledTask is an extracted task and the outcome of its calendar event.
type ScheduledTask struct {
	Task      extractor.Task
	EventID   string
	EventLink string
	Error     string // empty when the event was created
}

// ScheduleOutput is the result of scheduling.
type ScheduleOutput struct {
	Tasks     []ScheduledTask
	Count     int
	Scheduled int
}
