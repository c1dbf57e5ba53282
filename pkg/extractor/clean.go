package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var fillerPattern = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday|next \w+|this \w+|in \d+ days)\b`)

// CleanSentence removes the resolved date phrase and relative-date fillers from
// sentence and normalizes whitespace.
func CleanSentence(sentence, datePhrase string) string {
	// Fillers go first: "next Friday" may resolve to the phrase "Friday" alone.
	sentence = fillerPattern.ReplaceAllString(sentence, "")
	if datePhrase = strings.TrimSpace(datePhrase); datePhrase != "" {
		sentence = phrasePattern(datePhrase).ReplaceAllString(sentence, "")
	}
	return strings.Join(strings.Fields(sentence), " ")
}

// phrasePattern matches phrase case-insensitively on whole-word boundaries.
// A boundary is only required next to word characters, since \b cannot sit
// beside punctuation.
func phrasePattern(phrase string) *regexp.Regexp {
	expr := regexp.QuoteMeta(phrase)
	if r, _ := utf8.DecodeRuneInString(phrase); isWordRune(r) {
		expr = `\b` + expr
	}
	if r, _ := utf8.DecodeLastRuneInString(phrase); isWordRune(r) {
		expr += `\b`
	}
	return regexp.MustCompile(`(?i)` + expr)
}

// isWordRune mirrors the ASCII-only \w class used by \b.
func isWordRune(r rune) bool {
	return r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
