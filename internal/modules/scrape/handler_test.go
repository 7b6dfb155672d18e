package scrape

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(zap.NewNop())).RegisterRoutes(&r.RouterGroup)
	return r
}

func postScrape(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/scrape", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Scrape(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article>An article body easily long enough to extract.</article></body></html>`))
	}))
	defer upstream.Close()

	r := newTestRouter()
	w := postScrape(t, r, `{"url": "`+upstream.URL+`"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "An article body easily long enough to extract.", got["text"])
}

func TestHandler_Scrape_MissingURL(t *testing.T) {
	r := newTestRouter()
	w := postScrape(t, r, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "No url provided", got["error"])
}

func TestHandler_Scrape_ExtractionFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article>too small</article></body></html>`))
	}))
	defer upstream.Close()

	r := newTestRouter()
	w := postScrape(t, r, `{"url": "`+upstream.URL+`"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var got struct {
		Error string `json:"error"`
		Debug struct {
			URL  string `json:"url"`
			Text string `json:"text"`
		} `json:"debug"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Failed to extract main content", got.Error)
	assert.Equal(t, upstream.URL, got.Debug.URL)
	assert.Equal(t, "too small", got.Debug.Text)
}

func TestHandler_Scrape_FetchFailure(t *testing.T) {
	r := newTestRouter()
	w := postScrape(t, r, `{"url": "http://127.0.0.1:1"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var got struct {
		Error string `json:"error"`
		Debug struct {
			URL string `json:"url"`
		} `json:"debug"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Scraping failed", got.Error)
	assert.Equal(t, "http://127.0.0.1:1", got.Debug.URL)
}
