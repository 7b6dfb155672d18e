package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestScrape_PrefersArticleElement(t *testing.T) {
	html := `<html><body>
		<div class="content">This div content text should be ignored entirely here.</div>
		<article>The article element wins the extraction preference chain every time.</article>
	</body></html>`
	server := newTestServer(t, html)

	svc := NewService(zap.NewNop())
	result, err := svc.Scrape(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "The article element wins the extraction preference chain every time.", result.Text)
	assert.Equal(t, server.URL, result.URL)
}

func TestScrape_SelectorFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "content class when no article",
			html: `<html><body><div class="post-content">Falls back to the content class selector when no article exists.</div><p>other body words</p></body></html>`,
			want: "Falls back to the content class selector when no article exists.",
		},
		{
			name: "article class when no content class",
			html: `<html><body><div class="article-wrap">Falls back to the article class selector as the third preference.</div></body></html>`,
			want: "Falls back to the article class selector as the third preference.",
		},
		{
			name: "body as last resort",
			html: `<html><body><p>Plain body paragraphs are the final fallback for extraction here.</p></body></html>`,
			want: "Plain body paragraphs are the final fallback for extraction here.",
		},
	}

	svc := NewService(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.html)
			result, err := svc.Scrape(context.Background(), server.URL)
			require.NoError(t, err)
			assert.Contains(t, result.Text, tt.want)
		})
	}
}

func TestScrape_NormalizesWhitespace(t *testing.T) {
	html := "<html><body><article>Lines\n\nwith\t\tmessy   whitespace   get collapsed into single spaces.</article></body></html>"
	server := newTestServer(t, html)

	svc := NewService(zap.NewNop())
	result, err := svc.Scrape(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "Lines with messy whitespace get collapsed into single spaces.", result.Text)
}

func TestScrape_SendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><article>A page long enough to clear the extraction gate.</article></body></html>`))
	}))
	defer server.Close()

	svc := NewService(zap.NewNop())
	_, err := svc.Scrape(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, browserUserAgent, gotUA)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}

func TestScrape_LengthGate(t *testing.T) {
	svc := NewService(zap.NewNop())

	t.Run("29 characters fails", func(t *testing.T) {
		text := strings.Repeat("a", 29)
		server := newTestServer(t, "<html><body><article>"+text+"</article></body></html>")

		_, err := svc.Scrape(context.Background(), server.URL)

		var extractionErr *ExtractionError
		require.ErrorAs(t, err, &extractionErr)
		assert.Equal(t, text, extractionErr.Text)
	})

	t.Run("30 characters passes", func(t *testing.T) {
		text := strings.Repeat("a", 30)
		server := newTestServer(t, "<html><body><article>"+text+"</article></body></html>")

		result, err := svc.Scrape(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, text, result.Text)
	})

	t.Run("gate counts characters not bytes", func(t *testing.T) {
		// 29 two-byte characters: 58 bytes, still below the gate.
		text := strings.Repeat("د", 29)
		server := newTestServer(t, "<html><body><article>"+text+"</article></body></html>")

		_, err := svc.Scrape(context.Background(), server.URL)

		var extractionErr *ExtractionError
		require.ErrorAs(t, err, &extractionErr)
	})
}

func TestScrape_RejectsLeftoverMarkup(t *testing.T) {
	// A complete escaped tag decodes to literal markup that the tag strip
	// removes before validation; only a dangling marker survives the strip
	// and trips the gate.
	tests := []struct {
		name    string
		html    string
		wantErr bool
	}{
		{
			name:    "dangling iframe marker",
			html:    `<html><body><article>Some words and then &lt;iframe src="x" plus enough padding to pass the length gate.</article></body></html>`,
			wantErr: true,
		},
		{
			name:    "dangling script marker",
			html:    `<html><body><article>Some words and then &lt;script var x plus enough padding to pass the length gate.</article></body></html>`,
			wantErr: true,
		},
		{
			name:    "complete escaped tag is stripped",
			html:    `<html><body><article>Some words and then &lt;iframe src="x"&gt; plus enough padding to pass the length gate.</article></body></html>`,
			wantErr: false,
		},
	}

	svc := NewService(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.html)

			_, err := svc.Scrape(context.Background(), server.URL)

			if tt.wantErr {
				var extractionErr *ExtractionError
				require.ErrorAs(t, err, &extractionErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestScrape_FetchErrors(t *testing.T) {
	svc := NewService(zap.NewNop())

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := svc.Scrape(context.Background(), server.URL)

		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, server.URL, fetchErr.URL)
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := svc.Scrape(context.Background(), "http://127.0.0.1:1")

		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Error(t, errors.Unwrap(fetchErr))
	})
}
