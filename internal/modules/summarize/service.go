package summarize

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	appcfg "github.com/blogsum/core/internal/config"
	"github.com/blogsum/core/internal/pkg/taskqueue"
	"go.uber.org/zap"
)

const (
	minTextLength     = 100
	fallbackSentences = 3
	defaultGenTimeout = 10 * time.Second

	persistTaskType = "summary:persist"
)

var sentenceRE = regexp.MustCompile(`[^.!?]+[.!?]+`)

// DocumentSink receives the summary produced for every page.
type DocumentSink interface {
	SaveText(ctx context.Context, url, text string) error
}

// Service produces summaries, racing the configured model against a
// deadline and degrading to extractive summarization when it loses.
type Service struct {
	cfg     appcfg.AIConfig
	logger  *zap.Logger
	sink    DocumentSink
	tasks   *taskqueue.Service
	timeout time.Duration

	initOnce  sync.Once
	model     ModelFunc
	modelName string
	initErr   error
}

func NewService(cfg appcfg.AIConfig, logger *zap.Logger, sink DocumentSink, tasks *taskqueue.Service) *Service {
	return &Service{
		cfg:     cfg,
		logger:  logger,
		sink:    sink,
		tasks:   tasks,
		timeout: defaultGenTimeout,
	}
}

// ensureModel resolves the model callable once per process. A model
// injected before the first call (tests) wins over configuration.
func (s *Service) ensureModel() (ModelFunc, string, error) {
	s.initOnce.Do(func() {
		if s.model != nil {
			return
		}
		provider := selectProvider(s.cfg)
		s.model, s.modelName, s.initErr = buildModelFunc(provider)
	})
	return s.model, s.modelName, s.initErr
}

// Summarize returns a summary of text. Model failures and timeouts are
// absorbed into the fallback path and never surface as errors.
func (s *Service) Summarize(ctx context.Context, url, text string) (*SummaryResult, error) {
	if utf8.RuneCountInString(text) < minTextLength {
		return nil, ErrTextTooShort
	}

	keywords := ExtractKeywords(text)

	summary, modelName, ok := s.generate(ctx, text)
	var result *SummaryResult
	if ok {
		result = &SummaryResult{
			Summary:  summary,
			Keywords: keywords,
			Source:   SourceModel,
			Model:    modelName,
			Note:     noteModel,
		}
	} else {
		result = &SummaryResult{
			Summary:  fallbackSummary(text),
			Keywords: keywords,
			Source:   SourceFallback,
			Note:     noteFallback,
		}
	}

	s.persistSummary(url, result.Summary)
	return result, nil
}

// generate runs the model against the deadline. The model goroutine is
// detached rather than cancelled; a late result is simply discarded.
func (s *Service) generate(ctx context.Context, text string) (summary, modelName string, ok bool) {
	model, name, err := s.ensureModel()
	if err != nil {
		s.logger.Warn("summarization model unavailable", zap.Error(err))
		return "", "", false
	}

	timeout := s.timeout
	if timeout <= 0 {
		timeout = defaultGenTimeout
	}
	deadline, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type genResult struct {
		text string
		err  error
	}
	resultCh := make(chan genResult, 1)
	go func() {
		out, err := model(context.Background(), text)
		resultCh <- genResult{text: out, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			s.logger.Warn("summarization model failed", zap.Error(res.err))
			return "", "", false
		}
		out := strings.TrimSpace(res.text)
		if out == "" {
			s.logger.Warn("summarization model returned empty text")
			return "", "", false
		}
		return out, name, true
	case <-deadline.Done():
		s.logger.Warn("summarization model timed out", zap.Duration("timeout", timeout))
		return "", "", false
	}
}

// fallbackSummary takes the first few sentences of the text.
func fallbackSummary(text string) string {
	sentences := sentenceRE.FindAllString(text, fallbackSentences)
	for i, sentence := range sentences {
		sentences[i] = strings.TrimSpace(sentence)
	}
	summary := strings.TrimSpace(strings.Join(sentences, " "))
	if summary == "" {
		return "Unable to generate summary."
	}
	return summary
}

// persistSummary records the produced summary in the document store
// without blocking the response. Failures are logged and dropped.
func (s *Service) persistSummary(url, summary string) {
	if s.sink == nil {
		return
	}

	var taskID string
	if s.tasks != nil {
		task, err := s.tasks.Enqueue(context.Background(), persistTaskType, map[string]string{"url": url})
		if err != nil {
			s.logger.Warn("failed to enqueue persistence task", zap.Error(err))
		} else {
			taskID = task.ID
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if taskID != "" {
			_ = s.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskRunning, "")
		}
		if err := s.sink.SaveText(ctx, url, summary); err != nil {
			s.logger.Warn("failed to save summary to document store", zap.String("url", url), zap.Error(err))
			if taskID != "" {
				_ = s.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskFailed, err.Error())
			}
			return
		}
		if taskID != "" {
			_ = s.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskCompleted, "")
		}
	}()
}
