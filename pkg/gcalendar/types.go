package gcalendar

import "time"

// DefaultCalendarID is used when a request does not name a calendar.
const DefaultCalendarID = "primary"

// Reminder methods accepted by the Calendar API.
const (
	ReminderPopup = "popup"
	ReminderEmail = "email"
)

// Reminder overrides the calendar's default notification for one event.
type Reminder struct {
	Method  string
	Minutes int64
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Kolkata"
	Reminders   []Reminder
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
