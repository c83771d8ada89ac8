package pagespeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"seo_tracker/internal/domain"
)

const ProviderName = "pagespeed"

// Categories requested from the API, in request order.
var requestedCategories = []string{"PERFORMANCE", "ACCESSIBILITY", "BEST_PRACTICES", "SEO"}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RequestsPerMinute throttles outgoing calls. Zero disables throttling.
	RequestsPerMinute int
}

// Client runs Lighthouse audits through the PageSpeed Insights API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.With("provider", ProviderName),
	}
	if cfg.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	return c
}

// Audit runs one audit of pageURL. Every failure is a *domain.ProviderError.
func (c *Client) Audit(ctx context.Context, pageURL string) (*domain.AuditScores, error) {
	start := time.Now()

	resp, err := c.doRequest(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	scores, err := transform(resp)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("audit finished",
		"url", pageURL,
		"duration", time.Since(start),
	)

	return scores, nil
}

func (c *Client) requestURL(pageURL string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("url", pageURL)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	for _, category := range requestedCategories {
		q.Add("category", category)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *Client) doRequest(ctx context.Context, pageURL string) (*APIResponse, error) {
	reqURL, err := c.requestURL(pageURL)
	if err != nil {
		return nil, &domain.ProviderError{Kind: domain.ProviderTransport, Message: "build request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.ProviderError{Kind: domain.ProviderTransport, Message: "create request", Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &domain.ProviderError{Kind: domain.ProviderTransport, Message: "PageSpeed rate limit wait", Err: err}
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "SEOTracker/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Kind: domain.ProviderTransport, Message: "PageSpeed request failed", Err: redactKey(err)}
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&apiResp)

	if resp.StatusCode != http.StatusOK {
		msg := "Unknown error"
		if decodeErr == nil && apiResp.Error != nil && apiResp.Error.Message != "" {
			msg = apiResp.Error.Message
		}
		c.logger.Warn("unexpected status",
			"status", resp.StatusCode,
			"url", pageURL,
		)
		return nil, &domain.ProviderError{
			Kind:    domain.ProviderStatus,
			Message: "PageSpeed API error: " + msg,
		}
	}

	if decodeErr != nil {
		return nil, &domain.ProviderError{Kind: domain.ProviderSchema, Message: "decode PageSpeed response", Err: decodeErr}
	}

	return &apiResp, nil
}

func transform(resp *APIResponse) (*domain.AuditScores, error) {
	lr := resp.LighthouseResult
	if lr == nil {
		return nil, missingKey("lighthouseResult")
	}
	if lr.Categories == nil {
		return nil, missingKey("lighthouseResult.categories")
	}
	if lr.Audits == nil {
		return nil, missingKey("lighthouseResult.audits")
	}

	cats := lr.Categories
	categories := []struct {
		key string
		cat *Category
	}{
		{"performance", cats.Performance},
		{"accessibility", cats.Accessibility},
		{"best-practices", cats.BestPractices},
		{"seo", cats.SEO},
	}
	for _, c := range categories {
		path := "lighthouseResult.categories." + c.key
		if c.cat == nil {
			return nil, missingKey(path)
		}
		if !c.cat.Score.Present {
			return nil, missingKey(path + ".score")
		}
	}

	a := lr.Audits
	audits := []struct {
		key   string
		audit *Audit
	}{
		{"speed-index", a.SpeedIndex},
		{"first-contentful-paint", a.FirstContentfulPaint},
		{"largest-contentful-paint", a.LargestContentfulPaint},
	}
	for _, au := range audits {
		path := "lighthouseResult.audits." + au.key
		if au.audit == nil {
			return nil, missingKey(path)
		}
		if !au.audit.NumericValue.Present {
			return nil, missingKey(path + ".numericValue")
		}
	}

	return &domain.AuditScores{
		PerformanceScore:       percent(cats.Performance.Score.Value),
		AccessibilityScore:     percent(cats.Accessibility.Score.Value),
		BestPracticesScore:     percent(cats.BestPractices.Score.Value),
		SEOScore:               percent(cats.SEO.Score.Value),
		SpeedIndex:             a.SpeedIndex.NumericValue.Value,
		FirstContentfulPaint:   a.FirstContentfulPaint.NumericValue.Value,
		LargestContentfulPaint: a.LargestContentfulPaint.NumericValue.Value,
	}, nil
}

// percent converts a 0-1 fraction to a truncated 0-100 score.
func percent(score *float64) *int {
	if score == nil {
		return nil
	}
	v := int(*score * 100)
	return &v
}

// redactKey hides the API key in the request URL that *url.Error embeds in
// its message. Provider messages reach API clients and logs.
func redactKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	redacted := "PageSpeed API"
	if u, perr := url.Parse(urlErr.URL); perr == nil {
		q := u.Query()
		if q.Has("key") {
			q.Set("key", "REDACTED")
			u.RawQuery = q.Encode()
		}
		redacted = u.String()
	}

	return &url.Error{Op: urlErr.Op, URL: redacted, Err: urlErr.Err}
}

func missingKey(path string) error {
	return &domain.ProviderError{
		Kind:    domain.ProviderSchema,
		Message: "malformed PageSpeed response: missing " + path,
	}
}
