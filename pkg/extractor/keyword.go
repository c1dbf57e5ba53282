package extractor

// IsTaskLike reports whether sentence contains an action verb or a task indicator.
func IsTaskLike(sentence string) bool {
	return taskKeywords.matches(tokenize(sentence))
}
