package translate

const fallbackNote = "Used fallback dictionary translation due to API issue"

type translateDTO struct {
	Text string `json:"text" binding:"required"`
}

// TranslationResult is the wire shape of a completed translation.
type TranslationResult struct {
	Translated string `json:"translated"`
	Note       string `json:"note,omitempty"`

	// UsingFallback reports whether the dictionary path produced the
	// result. It is not part of the wire format.
	UsingFallback bool `json:"-"`
}
