package scrape

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Sites often serve stripped-down or challenge pages to obvious bots, so the
// fetch presents a browser identity.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// minContentLength is the validation floor: anything shorter signals that
// extraction grabbed boilerplate instead of article content.
const minContentLength = 30

var (
	whitespaceRE     = regexp.MustCompile(`\s+`)
	markupTagRE      = regexp.MustCompile(`<[^>]*>`)
	leftoverMarkupRE = regexp.MustCompile(`(?i)<iframe|<script`)
)

// contentSelectors is the ordered extraction preference; the first selector
// with non-empty text wins.
var contentSelectors = []string{
	"article",
	`[class*="content"]`,
	`[class*="article"]`,
	"body",
}

// Service fetches pages and extracts their main textual content.
type Service struct {
	client *http.Client
	logger *zap.Logger
}

// NewService builds the extractor. The HTTP client carries no timeout;
// slow upstreams stall the submission rather than failing it.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		client: &http.Client{},
		logger: logger,
	}
}

// Scrape fetches url and returns its normalized main text. Transport
// failures come back as *FetchError, content-shape failures as
// *ExtractionError; neither is a panic path.
func (s *Service) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("scraping failed", zap.String("url", url), zap.Error(err))
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		s.logger.Error("scraping failed", zap.String("url", url), zap.Error(err))
		return nil, &FetchError{URL: url, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		s.logger.Error("scraping failed", zap.String("url", url), zap.Error(err))
		return nil, &FetchError{URL: url, Err: err}
	}

	text := normalize(extract(doc))
	if err := validate(url, text); err != nil {
		s.logger.Error("extraction produced unusable text",
			zap.String("url", url), zap.Int("length", utf8.RuneCountInString(text)))
		return nil, err
	}

	return &ScrapeResult{URL: url, Text: text}, nil
}

// extract walks the selector preference chain and returns the first
// non-empty text it finds.
func extract(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		if text := doc.Find(selector).Text(); strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ""
}

// normalize collapses whitespace runs to single spaces, trims, then strips
// any markup tags that survived text extraction.
func normalize(text string) string {
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	return markupTagRE.ReplaceAllString(text, "")
}

// validate enforces the extraction gate: at least minContentLength
// characters and no residual iframe/script markers.
func validate(url, text string) error {
	if utf8.RuneCountInString(text) < minContentLength || leftoverMarkupRE.MatchString(text) {
		return &ExtractionError{URL: url, Text: text}
	}
	return nil
}
