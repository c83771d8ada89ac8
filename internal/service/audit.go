package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seo_tracker/internal/domain"
)

type AuditService struct {
	websites  WebsiteStore
	audits    AuditStore
	auditor   Auditor
	txManager TransactionManager
	publisher Publisher
	recorder  AuditRecorder
	logger    *slog.Logger
	now       func() time.Time
}

func NewAuditService(
	websites WebsiteStore,
	audits AuditStore,
	auditor Auditor,
	txManager TransactionManager,
	publisher Publisher,
	recorder AuditRecorder,
	logger *slog.Logger,
) *AuditService {
	return &AuditService{
		websites:  websites,
		audits:    audits,
		auditor:   auditor,
		txManager: txManager,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger.With("service", "audit"),
		now:       time.Now,
	}
}

// WithClock replaces the clock used for last_audit timestamps.
func (s *AuditService) WithClock(now func() time.Time) *AuditService {
	s.now = now
	return s
}

// Run audits the website synchronously. On provider failure nothing is
// persisted and the website's last audit time is left untouched.
func (s *AuditService) Run(ctx context.Context, websiteID int64) (*domain.AuditResult, error) {
	website, err := s.websites.GetByID(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With("website_id", website.ID, "url", website.URL)
	logger.Info("starting audit")

	start := time.Now()
	scores, err := s.auditor.Audit(ctx, website.URL)
	if s.recorder != nil {
		s.recorder.ObserveAudit(err, time.Since(start))
	}
	if err != nil {
		logger.Warn("audit failed", "error", err)
		return nil, fmt.Errorf("audit website %d: %w", website.ID, err)
	}

	result := &domain.AuditResult{
		WebsiteID:   website.ID,
		AuditScores: *scores,
	}
	auditedAt := s.now().UTC()

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.audits.Insert(txCtx, result); err != nil {
			return fmt.Errorf("save audit result: %w", err)
		}
		if err := s.websites.UpdateLastAudit(txCtx, website.ID, auditedAt); err != nil {
			return fmt.Errorf("update last audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("audit completed",
		"audit_id", result.ID,
		"duration", time.Since(start),
	)

	if s.publisher != nil {
		event := domain.Event{
			Type:      domain.EventAuditCompleted,
			WebsiteID: website.ID,
			Audit:     result,
			Timestamp: auditedAt,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.Warn("failed to publish event", "type", event.Type, "error", err)
		}
	}

	return result, nil
}

// History returns the stored audits of a website, newest first.
func (s *AuditService) History(ctx context.Context, websiteID int64) ([]domain.AuditResult, error) {
	if _, err := s.websites.GetByID(ctx, websiteID); err != nil {
		return nil, err
	}
	return s.audits.ListByWebsite(ctx, websiteID)
}
