package extractor

// ClassifyPriority returns the first priority group that matches sentence, or low.
func ClassifyPriority(sentence string) string {
	return firstGroup(priorityGroups, tokenize(sentence), PriorityLow)
}

// ClassifyCategory returns the first category group that matches sentence, or uncategorized.
func ClassifyCategory(sentence string) string {
	return firstGroup(categoryGroups, tokenize(sentence), CategoryUncategorized)
}

func firstGroup(groups []keywordGroup, ws wordSet, fallback string) string {
	for _, g := range groups {
		if g.vocab.matches(ws) {
			return g.label
		}
	}
	return fallback
}
