package extractor

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"calendar-task-scheduler/pkg/datemath"
)

// DateResolver finds the first date expression in a sentence.
// now is the reference time for relative expressions; ok is false when the
// sentence has no resolvable date.
type DateResolver interface {
	Resolve(sentence string, now time.Time) (match DateMatch, ok bool)
}

// SearchResolver searches free text with go-dateparser, preferring future
// dates for relative or ambiguous expressions.
type SearchResolver struct {
	Languages []string
}

// Resolve implements DateResolver.
func (r SearchResolver) Resolve(sentence string, now time.Time) (DateMatch, bool) {
	languages := r.Languages
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	cfg := &dps.Configuration{
		Languages:           languages,
		CurrentTime:         now,
		PreferredDateSource: dps.Future,
	}

	return recoverNoDate(func() (DateMatch, bool) {
		_, results, err := (&dps.Parser{}).Search(cfg, sentence)
		if err != nil || len(results) == 0 {
			return DateMatch{}, false
		}

		first := results[0]
		if first.Date.Time.IsZero() {
			return DateMatch{}, false
		}
		return DateMatch{
			Phrase: strings.TrimSpace(first.Text),
			Date:   first.Date.Time.In(now.Location()),
		}, true
	})
}

// recoverNoDate runs resolve, reporting no date if it panics. go-dateparser
// may panic on unusual input.
func recoverNoDate(resolve func() (DateMatch, bool)) (match DateMatch, ok bool) {
	defer func() {
		if recover() != nil {
			match, ok = DateMatch{}, false
		}
	}()
	return resolve()
}

// RelativeResolver finds phrases such as "tomorrow", "in 3 days" or
// "next friday" using datemath.
type RelativeResolver struct {
	parser *datemath.Parser
}

// NewRelativeResolver resolves relative phrases in loc.
func NewRelativeResolver(loc *time.Location) RelativeResolver {
	return RelativeResolver{parser: datemath.NewParserIn(loc)}
}

// Resolve implements DateResolver.
func (r RelativeResolver) Resolve(sentence string, now time.Time) (DateMatch, bool) {
	m, ok := r.parser.Scan(sentence, now)
	if !ok {
		return DateMatch{}, false
	}
	return DateMatch{Phrase: m.Phrase, Date: m.Time}, true
}

// ChainResolver returns the first match produced by its resolvers, in order.
type ChainResolver []DateResolver

// Resolve implements DateResolver.
func (c ChainResolver) Resolve(sentence string, now time.Time) (DateMatch, bool) {
	for _, r := range c {
		if m, ok := r.Resolve(sentence, now); ok {
			return m, true
		}
	}
	return DateMatch{}, false
}
