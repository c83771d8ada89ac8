package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"seo_tracker/internal/domain"
)

const msgURLAndNameRequired = "URL and name are required"

type WebsiteService struct {
	websites  WebsiteStore
	metrics   MetricsStore
	audits    AuditStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewWebsiteService(
	websites WebsiteStore,
	metrics MetricsStore,
	audits AuditStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *WebsiteService {
	return &WebsiteService{
		websites:  websites,
		metrics:   metrics,
		audits:    audits,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("service", "website"),
		now:       time.Now,
	}
}

// WithClock replaces the clock used to compute metric windows.
func (s *WebsiteService) WithClock(now func() time.Time) *WebsiteService {
	s.now = now
	return s
}

func (s *WebsiteService) List(ctx context.Context) ([]domain.Website, error) {
	return s.websites.List(ctx)
}

// Create stores a new website. Surrounding whitespace is trimmed from url
// and name before validation and storage.
func (s *WebsiteService) Create(ctx context.Context, url, name string) (*domain.Website, error) {
	url = strings.TrimSpace(url)
	name = strings.TrimSpace(name)
	if url == "" || name == "" {
		return nil, domain.NewValidationError(msgURLAndNameRequired)
	}

	website := &domain.Website{URL: url, Name: name}
	if err := s.websites.Create(ctx, website); err != nil {
		return nil, err
	}

	s.logger.Info("website created",
		"website_id", website.ID,
		"url", website.URL,
	)

	s.publish(ctx, domain.Event{
		Type:      domain.EventWebsiteCreated,
		WebsiteID: website.ID,
		Website:   website,
	})

	return website, nil
}

// Delete removes the website together with its metrics and audit history.
// Nothing is removed when the website does not exist.
func (s *WebsiteService) Delete(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.metrics.DeleteByWebsite(txCtx, id); err != nil {
			return fmt.Errorf("delete metrics: %w", err)
		}
		if err := s.audits.DeleteByWebsite(txCtx, id); err != nil {
			return fmt.Errorf("delete audits: %w", err)
		}
		if err := s.websites.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete website: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("website deleted", "website_id", id)

	s.publish(ctx, domain.Event{
		Type:      domain.EventWebsiteDeleted,
		WebsiteID: id,
	})

	return nil
}

// Metrics returns the website's daily metrics from days ago up to today
// (UTC calendar days, both ends inclusive), oldest first. A negative days
// yields an empty result.
func (s *WebsiteService) Metrics(ctx context.Context, id int64, days int) ([]domain.SEOMetric, error) {
	if _, err := s.websites.GetByID(ctx, id); err != nil {
		return nil, err
	}
	// A negative window is empty.
	if days < 0 {
		return []domain.SEOMetric{}, nil
	}

	to := truncateToDay(s.now().UTC())
	from := to.AddDate(0, 0, -days)

	return s.metrics.ListByWebsite(ctx, id, from, to)
}

func (s *WebsiteService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event",
			"type", event.Type,
			"website_id", event.WebsiteID,
			"error", err,
		)
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
