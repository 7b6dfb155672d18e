package pipeline

import (
	"context"

	"github.com/blogsum/core/internal/modules/scrape"
	"github.com/blogsum/core/internal/modules/summarize"
	"github.com/blogsum/core/internal/modules/translate"
	"go.uber.org/zap"
)

// Stage dependencies are consumed through narrow interfaces so runs can
// be exercised without live upstreams.
type (
	Scraper interface {
		Scrape(ctx context.Context, url string) (*scrape.ScrapeResult, error)
	}
	Summarizer interface {
		Summarize(ctx context.Context, url, text string) (*summarize.SummaryResult, error)
	}
	Translator interface {
		Translate(ctx context.Context, text string) *translate.TranslationResult
	}
	SummaryRecorder interface {
		SaveSummary(ctx context.Context, url, summary, translation string) error
	}
)

// Service runs the full submission flow server-side: scrape, summarize,
// translate, persist, in that order, stopping at the first hard failure.
type Service struct {
	scraper    Scraper
	summarizer Summarizer
	translator Translator
	recorder   SummaryRecorder
	logger     *zap.Logger
}

func NewService(scraper Scraper, summarizer Summarizer, translator Translator, recorder SummaryRecorder, logger *zap.Logger) *Service {
	return &Service{
		scraper:    scraper,
		summarizer: summarizer,
		translator: translator,
		recorder:   recorder,
		logger:     logger,
	}
}

// Run executes all stages for one URL. Summarization and translation
// degrade internally instead of failing; scraping and persistence are
// the only stages that can end the run in the error state.
func (s *Service) Run(ctx context.Context, url string) *Result {
	scraped, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		s.logger.Error("pipeline scrape stage failed", zap.String("url", url), zap.Error(err))
		return &Result{State: StateError, Stage: StateScraping, Error: err.Error()}
	}

	summary, err := s.summarizer.Summarize(ctx, url, scraped.Text)
	if err != nil {
		s.logger.Error("pipeline summarize stage failed", zap.String("url", url), zap.Error(err))
		return &Result{State: StateError, Stage: StateSummarizing, Error: err.Error()}
	}

	translation := s.translator.Translate(ctx, summary.Summary)

	if err := s.recorder.SaveSummary(ctx, url, summary.Summary, translation.Translated); err != nil {
		s.logger.Error("pipeline persist stage failed", zap.String("url", url), zap.Error(err))
		return &Result{State: StateError, Stage: StatePersisting, Error: "Failed to save summary"}
	}

	note := summary.Note
	if translation.Note != "" {
		note = translation.Note
	}

	return &Result{
		State:       StateDone,
		Summary:     summary.Summary,
		Translation: translation.Translated,
		Keywords:    summary.Keywords,
		Source:      summary.Source,
		Note:        note,
	}
}
