package model

// Source identifies the surface a request came through.
type Source string

const (
	SourceHTTP Source = "http"
	SourceCLI  Source = "cli"
)

// Scope carries per-request identity through the use cases.
type Scope struct {
	RequestID string
	Source    Source
}
