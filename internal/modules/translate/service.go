package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	appcfg "github.com/blogsum/core/internal/config"
	"go.uber.org/zap"
)

const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// Service translates text through the remote provider, degrading to the
// built-in dictionary whenever the provider is unreachable or returns an
// unexpected shape.
type Service struct {
	endpoint   string
	targetLang string
	client     *http.Client
	logger     *zap.Logger
}

func NewService(cfg appcfg.TranslateConfig, logger *zap.Logger) *Service {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	targetLang := strings.TrimSpace(cfg.TargetLang)
	if targetLang == "" {
		targetLang = "ur"
	}
	return &Service{
		endpoint:   endpoint,
		targetLang: targetLang,
		client:     &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// Translate never fails: any provider error collapses into the
// dictionary fallback and is reported through the result note.
func (s *Service) Translate(ctx context.Context, text string) *TranslationResult {
	translated, err := s.callProvider(ctx, text)
	if err != nil {
		s.logger.Warn("translation provider failed, using dictionary fallback", zap.Error(err))
		return &TranslationResult{
			Translated:    dictionaryTranslate(text),
			Note:          fallbackNote,
			UsingFallback: true,
		}
	}
	return &TranslationResult{Translated: translated}
}

// callProvider queries the translate endpoint and reassembles the
// segmented response into one string.
func (s *Service) callProvider(ctx context.Context, text string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", s.targetLang)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return parseProviderResponse(body)
}

// parseProviderResponse decodes the provider's nested-array payload:
// [[["segment translation","segment source",...],...],...]. Any other
// shape is an error.
func parseProviderResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("API response format unexpected: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("API response format unexpected: empty payload")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("API response format unexpected: %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(segment[0], &part); err != nil {
			return "", fmt.Errorf("API response format unexpected: %w", err)
		}
		sb.WriteString(part)
	}

	translated := sb.String()
	if strings.TrimSpace(translated) == "" {
		return "", fmt.Errorf("API response format unexpected: no translation segments")
	}
	return translated, nil
}

// dictionaryTranslate maps space-separated words through the dictionary.
// Tokens carrying punctuation miss the lookup and pass through as-is.
func dictionaryTranslate(text string) string {
	words := strings.Split(text, " ")
	for i, word := range words {
		if replacement, ok := urduDict[strings.ToLower(word)]; ok {
			words[i] = replacement
		}
	}
	return strings.Join(words, " ")
}
