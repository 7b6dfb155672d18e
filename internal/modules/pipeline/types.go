package pipeline

// State names one pipeline stage. A run advances strictly in order and
// stops at the first terminal state.
type State string

const (
	StateIdle        State = "idle"
	StateScraping    State = "scraping"
	StateSummarizing State = "summarizing"
	StateTranslating State = "translating"
	StatePersisting  State = "persisting"
	StateDone        State = "done"
	StateError       State = "error"
)

type pipelineDTO struct {
	URL string `json:"url" binding:"required"`
}

// Result is the final state of one pipeline run. Stage is set only when
// the run ended in error, naming where it stopped.
type Result struct {
	State       State    `json:"state"`
	Stage       State    `json:"stage,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Translation string   `json:"translation,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Source      string   `json:"source,omitempty"`
	Note        string   `json:"note,omitempty"`
	Error       string   `json:"error,omitempty"`
}
