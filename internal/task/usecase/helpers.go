package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"calendar-task-scheduler/pkg/extractor"
	"calendar-task-scheduler/pkg/gcalendar"
)

var defaultReminders = []gcalendar.Reminder{
	{Method: gcalendar.ReminderPopup, Minutes: 10},
	{Method: gcalendar.ReminderEmail, Minutes: 30},
}

// cacheKey scopes cached results to the reference day, since relative dates
// resolve differently tomorrow.
func cacheKey(now time.Time, text string) string {
	sum := sha256.Sum256([]byte(text))
	return now.Format(extractor.DueDateLayout) + ":" + hex.EncodeToString(sum[:])
}

// eventSummary falls back to the original sentence when cleanup left nothing.
func eventSummary(t extractor.Task) string {
	if t.Task != "" {
		return t.Task
	}
	return t.Original
}

func eventDescription(t extractor.Task) string {
	return fmt.Sprintf("Original: %s | Priority: %s | Category: %s", t.Original, t.Priority, t.Category)
}
