package extractor

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Splitter breaks text into sentences.
type Splitter interface {
	Split(text string) ([]string, error)
}

// ProseSplitter segments each non-empty line of the text with prose's
// punkt-based sentence boundary detector. Lines are segmented separately so
// task lists without terminal punctuation yield one sentence per line.
type ProseSplitter struct{}

// Split implements Splitter.
func (ProseSplitter) Split(text string) ([]string, error) {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		doc, err := prose.NewDocument(line,
			prose.WithTokenization(false),
			prose.WithTagging(false),
			prose.WithExtraction(false),
		)
		if err != nil {
			return sentences, fmt.Errorf("segment sentences: %w", err)
		}

		for _, s := range doc.Sentences() {
			if t := strings.TrimSpace(s.Text); t != "" {
				sentences = append(sentences, t)
			}
		}
	}
	return sentences, nil
}
