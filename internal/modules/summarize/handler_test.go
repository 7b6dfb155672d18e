package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appcfg "github.com/blogsum/core/internal/config"
	"github.com/blogsum/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})
	NewHandler(svc).RegisterRoutes(&r.RouterGroup)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Summarize(t *testing.T) {
	svc := NewService(appcfg.AIConfig{}, zap.NewNop(), nil, nil)
	svc.model = func(ctx context.Context, text string) (string, error) {
		return "A concise summary.", nil
	}
	svc.modelName = "test-model"
	svc.timeout = 200 * time.Millisecond
	r := newTestRouter(svc)

	body := `{"url": "https://example.com", "text": "` + strings.Repeat("Plenty of words here. ", 10) + `"}`
	w := postJSON(t, r, "/summarize", body)

	require.Equal(t, http.StatusOK, w.Code)

	var got SummaryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "A concise summary.", got.Summary)
	assert.Equal(t, SourceModel, got.Source)
	assert.Equal(t, "test-model", got.Model)
	assert.NotEmpty(t, got.Keywords)
}

func TestHandler_Summarize_InvalidInput(t *testing.T) {
	svc := NewService(appcfg.AIConfig{}, zap.NewNop(), nil, nil)
	r := newTestRouter(svc)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing text", `{"url": "https://example.com"}`, "No text provided"},
		{"missing url", `{"text": "` + strings.Repeat("a", 120) + `"}`, "No url provided"},
		{"malformed json", `{not json`, "No text provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/summarize", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var got map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantErr, got["error"])
		})
	}
}

func TestHandler_Summarize_ShortText(t *testing.T) {
	svc := NewService(appcfg.AIConfig{}, zap.NewNop(), nil, nil)
	r := newTestRouter(svc)

	w := postJSON(t, r, "/summarize", `{"url": "https://example.com", "text": "too short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, ErrTextTooShort.Error(), got["error"])
}

func TestHandler_Summarize_MethodNotAllowed(t *testing.T) {
	svc := NewService(appcfg.AIConfig{}, zap.NewNop(), nil, nil)
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/summarize", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Method not allowed. Use POST.", got["error"])
}
