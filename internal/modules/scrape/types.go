package scrape

import "fmt"

type scrapeDTO struct {
	URL string `json:"url"`
}

type scrapeResponse struct {
	Text string `json:"text"`
}

// ScrapeResult is the normalized plain text extracted from a page.
type ScrapeResult struct {
	URL  string
	Text string
}

// FetchError wraps a transport failure for the given URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("scraping failed for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionError reports that the page yielded no usable content: the
// normalized text was too short or still contained script/iframe markup.
// Text is kept for diagnostics, never silently discarded.
type ExtractionError struct {
	URL  string
	Text string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract main content from %s", e.URL)
}
