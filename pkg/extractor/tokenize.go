package extractor

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// wordSet is the lower-cased words of a sentence, as a set and in order.
type wordSet struct {
	words  map[string]struct{}
	joined string // " w1 w2 ... wn "
}

func tokenize(sentence string) wordSet {
	tokens := wordPattern.FindAllString(strings.ToLower(sentence), -1)
	ws := wordSet{words: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		ws.words[t] = struct{}{}
	}
	ws.joined = " " + strings.Join(tokens, " ") + " "
	return ws
}

func (ws wordSet) hasPhrase(phrase string) bool {
	return strings.Contains(ws.joined, " "+phrase+" ")
}
