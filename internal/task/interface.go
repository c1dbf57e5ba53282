package task

import (
	"context"

	"calendar-task-scheduler/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Extract finds dated tasks in free-form text.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Schedule extracts tasks and creates one calendar event per task.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
}
