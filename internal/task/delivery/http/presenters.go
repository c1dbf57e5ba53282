package http

import (
	"calendar-task-scheduler/internal/task"
	"calendar-task-scheduler/pkg/extractor"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() task.ExtractInput {
	return task.ExtractInput{Text: r.Text}
}

// ---

type scheduleReq struct {
	Text       string `json:"text"        binding:"required"`
	CalendarID string `json:"calendar_id"`
}

func (r scheduleReq) validate() error { return nil }

func (r scheduleReq) toInput() task.ScheduleInput {
	return task.ScheduleInput{
		Text:       r.Text,
		CalendarID: r.CalendarID,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Original string `json:"original"`
	Task     string `json:"task"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

func newTaskResp(t extractor.Task) taskResp {
	return taskResp{
		Original: t.Original,
		Task:     t.Task,
		DueDate:  t.DueDate,
		Priority: t.Priority,
		Category: t.Category,
	}
}

type extractResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newExtractResp(out task.ExtractOutput) extractResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return extractResp{Tasks: tasks, Count: out.Count}
}

type scheduledTaskResp struct {
	taskResp
	EventID   string `json:"event_id,omitempty"`
	EventLink string `json:"event_link,omitempty"`
	Error     string `json:"error,omitempty"`
}

type scheduleResp struct {
	Tasks     []scheduledTaskResp `json:"tasks"`
	Count     int                 `json:"count"`
	Scheduled int                 `json:"scheduled"`
}

func (h *handler) newScheduleResp(out task.ScheduleOutput) scheduleResp {
	tasks := make([]scheduledTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = scheduledTaskResp{
			taskResp:  newTaskResp(t.Task),
			EventID:   t.EventID,
			EventLink: t.EventLink,
			Error:     t.Error,
		}
	}
	return scheduleResp{
		Tasks:     tasks,
		Count:     out.Count,
		Scheduled: out.Scheduled,
	}
}
