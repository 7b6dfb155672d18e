package summarize

import "errors"

// Source discriminators returned to callers so they can tell a model summary
// from a deterministic one.
const (
	SourceModel    = "AI Model"
	SourceFallback = "Fallback Method"
)

const (
	noteModel    = "Generated by the configured AI provider"
	noteFallback = "Model loading failed, timed out, or using basic extraction"
)

// ErrTextTooShort rejects inputs below the summarization floor.
var ErrTextTooShort = errors.New("Text too short for summarization. Minimum 100 characters required.")

type summarizeDTO struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// SummaryResult is the immutable outcome of one summarization request.
type SummaryResult struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
	Source   string   `json:"source"`
	Model    string   `json:"model,omitempty"`
	Note     string   `json:"note,omitempty"`
}
