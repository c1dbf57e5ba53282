package extractor

import "strings"

// vocabulary is an immutable keyword set. Multi-word entries are matched as
// consecutive words.
type vocabulary struct {
	words   map[string]struct{}
	phrases []string
}

func newVocabulary(entries ...string) vocabulary {
	v := vocabulary{words: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		e = strings.ToLower(e)
		if strings.Contains(e, " ") {
			v.phrases = append(v.phrases, e)
			continue
		}
		v.words[e] = struct{}{}
	}
	return v
}

func (v vocabulary) matches(ws wordSet) bool {
	for w := range ws.words {
		if _, ok := v.words[w]; ok {
			return true
		}
	}
	for _, p := range v.phrases {
		if ws.hasPhrase(p) {
			return true
		}
	}
	return false
}

func (v vocabulary) union(other vocabulary) vocabulary {
	out := vocabulary{words: make(map[string]struct{}, len(v.words)+len(other.words))}
	for w := range v.words {
		out.words[w] = struct{}{}
	}
	for w := range other.words {
		out.words[w] = struct{}{}
	}
	out.phrases = append(append(out.phrases, v.phrases...), other.phrases...)
	return out
}

// keywordGroup labels a vocabulary. Groups are evaluated in slice order.
type keywordGroup struct {
	label string
	vocab vocabulary
}

var (
	actionVerbs = newVocabulary(
		"submit", "complete", "finish", "send", "deliver", "review", "prepare",
		"create", "update", "call", "email", "schedule", "book", "reserve",
		"order", "buy", "purchase", "pay", "attend", "meet", "discuss", "plan",
		"organize", "arrange", "confirm", "follow up", "check", "verify", "test",
	)

	taskIndicators = newVocabulary(
		"task", "assignment", "project", "deadline", "due", "reminder",
		"appointment", "meeting", "report", "presentation", "document",
		"proposal", "invoice", "quote", "contract",
	)

	taskKeywords = actionVerbs.union(taskIndicators)

	priorityGroups = []keywordGroup{
		{label: PriorityHigh, vocab: newVocabulary("urgent", "asap", "immediately", "critical")},
		{label: PriorityMedium, vocab: newVocabulary("soon", "priority", "should", "need to")},
		{label: PriorityLow, vocab: newVocabulary("maybe", "eventually", "when possible")},
	}

	categoryGroups = []keywordGroup{
		{label: CategoryWork, vocab: newVocabulary("report", "meeting", "presentation", "project", "client", "business")},
		{label: CategoryPersonal, vocab: newVocabulary("doctor", "dentist", "family", "friend", "home", "car")},
		{label: CategoryDeadline, vocab: newVocabulary("due", "deadline", "submit", "deliver", "finish")},
		{label: CategoryMeeting, vocab: newVocabulary("meeting", "call", "conference", "discuss", "attend", "appointment")},
	}
)
