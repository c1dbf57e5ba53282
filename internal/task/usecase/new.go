package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-task-scheduler/pkg/datemath"
	"calendar-task-scheduler/pkg/extractor"
	"calendar-task-scheduler/pkg/gcalendar"
	pkgLog "calendar-task-scheduler/pkg/log"
)

// TaskExtractor is the extraction pipeline the use case runs.
type TaskExtractor interface {
	Now() time.Time
	ExtractAt(ctx context.Context, text string, now time.Time) []extractor.Task
}

// CalendarClient creates calendar events.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the task use case.
type Config struct {
	MaxInputBytes int
	CacheSize     int
	CacheTTL      time.Duration

	CalendarID    string
	Timezone      string
	EventHour     int
	EventDuration time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	extractor TaskExtractor
	calendar  CalendarClient
	dateMath  *datemath.Parser
	cache     *expirable.LRU[string, []extractor.Task]
	cfg       Config
}

// New creates a new task UseCase instance. calendar may be nil, in which case
// Schedule returns task.ErrCalendarNotConfigured.
func New(
	l pkgLog.Logger,
	ext TaskExtractor,
	calendar CalendarClient,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = time.Hour
	}
	if cfg.Timezone == "" {
		cfg.Timezone = dateMath.Location().String()
	}

	uc := &implUseCase{
		l:         l,
		extractor: ext,
		dateMath:  dateMath,
		cache:     expirable.NewLRU[string, []extractor.Task](cfg.CacheSize, nil, cfg.CacheTTL),
		cfg:       cfg,
	}
	// Avoid storing a typed nil pointer in the interface.
	if c, ok := calendar.(*gcalendar.Client); !ok || c != nil {
		uc.calendar = calendar
	}
	return uc
}
