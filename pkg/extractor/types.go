package extractor

import "time"

// Priority levels assigned to a task.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Categories assigned to a task.
const (
	CategoryWork          = "work"
	CategoryPersonal      = "personal"
	CategoryDeadline      = "deadline"
	CategoryMeeting       = "meeting"
	CategoryUncategorized = "uncategorized"
)

// DueDateLayout is the ISO 8601 calendar date layout of Task.DueDate.
const DueDateLayout = "2006-01-02"

// Task is one actionable item found in the input text.
type Task struct {
	Original string `json:"original"`
	Task     string `json:"task"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

// DateMatch is the first date expression found in a sentence.
type DateMatch struct {
	Phrase string    // text of the expression as it appears in the sentence
	Date   time.Time // resolved instant, only the calendar day is used
}
