package extractor

import (
	"context"
	"time"

	"calendar-task-scheduler/pkg/log"
)

// Extractor turns free-form text into dated tasks. It holds no mutable state
// and is safe for concurrent use.
type Extractor struct {
	splitter Splitter
	resolver DateResolver
	location *time.Location
	clock    func() time.Time
	l        log.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSplitter replaces the sentence splitter.
func WithSplitter(s Splitter) Option {
	return func(e *Extractor) { e.splitter = s }
}

// WithDateResolver replaces the date resolver.
func WithDateResolver(r DateResolver) Option {
	return func(e *Extractor) { e.resolver = r }
}

// WithLocation sets the timezone relative dates are resolved in.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithClock sets the source of the reference time.
func WithClock(clock func() time.Time) Option {
	return func(e *Extractor) { e.clock = clock }
}

// WithLogger sets the logger used for per-sentence debug output.
func WithLogger(l log.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.l = l
		}
	}
}

// New creates an Extractor. Defaults: prose sentence splitting, go-dateparser
// search with a datemath fallback, local time.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		location: time.Local,
		l:        log.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.clock == nil {
		loc := e.location
		e.clock = func() time.Time { return time.Now().In(loc) }
	}
	if e.splitter == nil {
		e.splitter = ProseSplitter{}
	}
	if e.resolver == nil {
		e.resolver = ChainResolver{SearchResolver{}, NewRelativeResolver(e.location)}
	}
	return e
}

// Now returns the reference time the extractor resolves dates against.
func (e *Extractor) Now() time.Time {
	return e.clock()
}

// Extract returns one Task per task-like sentence with a resolvable date, in
// source order.
func (e *Extractor) Extract(ctx context.Context, text string) []Task {
	return e.ExtractAt(ctx, text, e.clock())
}

// ExtractAt is Extract with an explicit reference time.
func (e *Extractor) ExtractAt(ctx context.Context, text string, now time.Time) []Task {
	now = now.In(e.location)

	sentences, err := e.splitter.Split(text)
	if err != nil {
		e.l.Warnf(ctx, "extractor.ExtractAt: %v", err)
	}

	tasks := make([]Task, 0, len(sentences))
	for _, sentence := range sentences {
		t, ok := e.extractSentence(ctx, sentence, now)
		if !ok {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (e *Extractor) extractSentence(ctx context.Context, sentence string, now time.Time) (Task, bool) {
	if !IsTaskLike(sentence) {
		return Task{}, false
	}

	match, found := e.resolver.Resolve(sentence, now)
	if !found {
		e.l.Debugf(ctx, "extractor: dropped sentence without date: %q", sentence)
		return Task{}, false
	}

	return Task{
		Original: sentence,
		Task:     CleanSentence(sentence, match.Phrase),
		DueDate:  match.Date.In(now.Location()).Format(DueDateLayout),
		Priority: ClassifyPriority(sentence),
		Category: ClassifyCategory(sentence),
	}, true
}
