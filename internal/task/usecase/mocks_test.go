package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"calendar-task-scheduler/pkg/datemath"
	"calendar-task-scheduler/pkg/extractor"
	"calendar-task-scheduler/pkg/gcalendar"
)

// Wednesday, May 1, 2024
var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// countingExtractor wraps a deterministic extractor and counts pipeline runs.
type countingExtractor struct {
	inner *extractor.Extractor
	calls int
}

func newCountingExtractor() *countingExtractor {
	return &countingExtractor{
		inner: extractor.New(
			extractor.WithLocation(time.UTC),
			extractor.WithClock(func() time.Time { return baseTime }),
			extractor.WithDateResolver(extractor.NewRelativeResolver(time.UTC)),
		),
	}
}

func (c *countingExtractor) Now() time.Time { return c.inner.Now() }

func (c *countingExtractor) ExtractAt(ctx context.Context, text string, now time.Time) []extractor.Task {
	c.calls++
	return c.inner.ExtractAt(ctx, text, now)
}

// mockCalendarClient is safe for concurrent use; requests are keyed by summary.
type mockCalendarClient struct {
	failSummary string

	mu       sync.Mutex
	requests map[string]gcalendar.CreateEventRequest
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	if m.requests == nil {
		m.requests = make(map[string]gcalendar.CreateEventRequest)
	}
	m.requests[req.Summary] = req
	m.mu.Unlock()

	if m.failSummary != "" && req.Summary == m.failSummary {
		return nil, errors.New("cal error")
	}
	return &gcalendar.Event{
		ID:       "evt-" + req.StartTime.Format("20060102"),
		HtmlLink: "http://cal.link/" + req.StartTime.Format("20060102"),
	}, nil
}

func utcParser() *datemath.Parser {
	return datemath.NewParserIn(time.UTC)
}

func (m *mockCalendarClient) request(summary string) (gcalendar.CreateEventRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[summary]
	return req, ok
}
