package pagespeed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo_tracker/internal/domain"
)

const fullResponse = `{
  "lighthouseResult": {
    "categories": {
      "performance": {"score": 0.91},
      "accessibility": {"score": 1},
      "best-practices": {"score": 0.5},
      "seo": {"score": 0.876}
    },
    "audits": {
      "speed-index": {"numericValue": 1234.5},
      "first-contentful-paint": {"numericValue": 801.2},
      "largest-contentful-paint": {"numericValue": 2100}
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := New(Config{BaseURL: srv.URL + "/runPagespeed", APIKey: "test-key", Timeout: 5 * time.Second}, logger)
	return client, srv
}

func requireProviderError(t *testing.T, err error, kind domain.ProviderErrorKind) *domain.ProviderError {
	t.Helper()

	var perr *domain.ProviderError
	require.True(t, errors.As(err, &perr), "expected *domain.ProviderError, got %T", err)
	assert.Equal(t, kind, perr.Kind)
	return perr
}

func TestAudit_Success(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/runPagespeed", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, fullResponse)
	})

	scores, err := client.Audit(context.Background(), "https://ex.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://ex.com"}, gotQuery["url"])
	assert.Equal(t, []string{"test-key"}, gotQuery["key"])
	assert.Equal(t, []string{"PERFORMANCE", "ACCESSIBILITY", "BEST_PRACTICES", "SEO"}, gotQuery["category"])

	require.NotNil(t, scores.PerformanceScore)
	assert.Equal(t, 91, *scores.PerformanceScore)
	assert.Equal(t, 100, *scores.AccessibilityScore)
	assert.Equal(t, 50, *scores.BestPracticesScore)
	assert.Equal(t, 87, *scores.SEOScore)
	assert.InDelta(t, 1234.5, *scores.SpeedIndex, 1e-9)
	assert.InDelta(t, 801.2, *scores.FirstContentfulPaint, 1e-9)
	assert.InDelta(t, 2100.0, *scores.LargestContentfulPaint, 1e-9)
}

func TestAudit_OmitsEmptyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasKey := r.URL.Query()["key"]
		assert.False(t, hasKey)
		_, _ = io.WriteString(w, fullResponse)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Audit(context.Background(), "https://ex.com")
	assert.NoError(t, err)
}

func TestAudit_NullScoresAreKept(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{
		  "lighthouseResult": {
		    "categories": {
		      "performance": {"score": null},
		      "accessibility": {"score": 0.7},
		      "best-practices": {"score": 0.8},
		      "seo": {"score": 0.9}
		    },
		    "audits": {
		      "speed-index": {"numericValue": null},
		      "first-contentful-paint": {"numericValue": 1},
		      "largest-contentful-paint": {"numericValue": 2}
		    }
		  }
		}`)
	})

	scores, err := client.Audit(context.Background(), "https://ex.com")
	require.NoError(t, err)
	assert.Nil(t, scores.PerformanceScore)
	assert.Nil(t, scores.SpeedIndex)
	assert.Equal(t, 70, *scores.AccessibilityScore)
}

func TestAudit_ErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "provider message",
			body:    `{"error": {"code": 400, "message": "Invalid url"}}`,
			wantMsg: "PageSpeed API error: Invalid url",
		},
		{
			name:    "no error object",
			body:    `{}`,
			wantMsg: "PageSpeed API error: Unknown error",
		},
		{
			name:    "non-json body",
			body:    `<html>bad gateway</html>`,
			wantMsg: "PageSpeed API error: Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, tt.body)
			})

			scores, err := client.Audit(context.Background(), "https://ex.com")
			assert.Nil(t, scores)
			perr := requireProviderError(t, err, domain.ProviderStatus)
			assert.Equal(t, tt.wantMsg, perr.Error())
		})
	}
}

func TestAudit_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "no lighthouse result",
			body:    `{"id": "x"}`,
			wantMsg: "malformed PageSpeed response: missing lighthouseResult",
		},
		{
			name:    "no categories",
			body:    `{"lighthouseResult": {"audits": {}}}`,
			wantMsg: "malformed PageSpeed response: missing lighthouseResult.categories",
		},
		{
			name: "missing category",
			body: `{"lighthouseResult": {
				"categories": {"performance": {"score": 1}, "accessibility": {"score": 1}, "seo": {"score": 1}},
				"audits": {"speed-index": {}, "first-contentful-paint": {}, "largest-contentful-paint": {}}}}`,
			wantMsg: "malformed PageSpeed response: missing lighthouseResult.categories.best-practices",
		},
		{
			name: "missing audit",
			body: `{"lighthouseResult": {
				"categories": {"performance": {"score": 1}, "accessibility": {"score": 1}, "best-practices": {"score": 1}, "seo": {"score": 1}},
				"audits": {"speed-index": {"numericValue": 1}, "first-contentful-paint": {"numericValue": 1}}}}`,
			wantMsg: "malformed PageSpeed response: missing lighthouseResult.audits.largest-contentful-paint",
		},
		{
			name: "empty category and audit objects",
			body: `{"lighthouseResult": {
				"categories": {"performance": {}, "accessibility": {}, "best-practices": {}, "seo": {}},
				"audits": {"speed-index": {}, "first-contentful-paint": {}, "largest-contentful-paint": {}}}}`,
			wantMsg: "malformed PageSpeed response: missing lighthouseResult.categories.performance.score",
		},
		{
			name: "missing score key",
			body: `{"lighthouseResult": {
				"categories": {"performance": {"score": 1}, "accessibility": {"score": null}, "best-practices": {"score": 1}, "seo": {"title": "SEO"}},
				"audits": {"speed-index": {"numericValue": 1}, "first-contentful-paint": {"numericValue": 1}, "largest-contentful-paint": {"numericValue": 1}}}}`,
			wantMsg: "malformed PageSpeed response: missing lighthouseResult.categories.seo.score",
		},
		{
			name: "missing numericValue key",
			body: `{"lighthouseResult": {
				"categories": {"performance": {"score": 1}, "accessibility": {"score": 1}, "best-practices": {"score": 1}, "seo": {"score": 1}},
				"audits": {"speed-index": {"numericValue": null}, "first-contentful-paint": {"score": 0.9}, "largest-contentful-paint": {"numericValue": 1}}}}`,
			wantMsg: "malformed PageSpeed response: missing lighthouseResult.audits.first-contentful-paint.numericValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.Audit(context.Background(), "https://ex.com")
			perr := requireProviderError(t, err, domain.ProviderSchema)
			assert.Equal(t, tt.wantMsg, perr.Error())
		})
	}
}

func TestAudit_UndecodableBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := client.Audit(context.Background(), "https://ex.com")
	perr := requireProviderError(t, err, domain.ProviderSchema)
	assert.Contains(t, perr.Error(), "decode PageSpeed response")
}

func TestAudit_TransportError(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Audit(context.Background(), "https://ex.com")
	perr := requireProviderError(t, err, domain.ProviderTransport)
	assert.Contains(t, perr.Error(), "PageSpeed request failed")
	assert.NotContains(t, perr.Error(), "test-key")
	assert.Contains(t, perr.Error(), "key=REDACTED")
}

func TestPercent_Truncates(t *testing.T) {
	for _, tt := range []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.999, 99},
		{0.5, 50},
		{1, 100},
	} {
		got := percent(&tt.in)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, *got, "score %v", tt.in)
	}
	assert.Nil(t, percent(nil))
}

func TestAudit_RateLimitHonoursContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, fullResponse)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, RequestsPerMinute: 1}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Audit(context.Background(), "https://ex.com")
	require.NoError(t, err)

	// The single token is spent, so the next call cannot proceed before the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Audit(ctx, "https://ex.com")
	requireProviderError(t, err, domain.ProviderTransport)
	assert.Equal(t, int32(1), calls.Load())
}
