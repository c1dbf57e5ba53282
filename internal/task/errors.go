package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput            = errors.New("input text is empty")
	ErrInputTooLarge         = errors.New("input text is too large")
	ErrCalendarNotConfigured = errors.New("calendar is not configured")
	ErrEmptyFile             = errors.New("uploaded file is empty")
	ErrUnsupportedFile       = errors.New("only .txt files are supported")
)
