package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"seo_tracker/internal/domain"
)

type WebsiteStore interface {
	Create(ctx context.Context, website *domain.Website) error
	GetByID(ctx context.Context, id int64) (*domain.Website, error)
	List(ctx context.Context) ([]domain.Website, error)
	Delete(ctx context.Context, id int64) error
	UpdateLastAudit(ctx context.Context, id int64, at time.Time) error
}

type MetricsStore interface {
	ListByWebsite(ctx context.Context, websiteID int64, from, to time.Time) ([]domain.SEOMetric, error)
	DeleteByWebsite(ctx context.Context, websiteID int64) error
}

type AuditStore interface {
	Insert(ctx context.Context, result *domain.AuditResult) error
	ListByWebsite(ctx context.Context, websiteID int64) ([]domain.AuditResult, error)
	DeleteByWebsite(ctx context.Context, websiteID int64) error
}

// Auditor runs a single audit of a page against an external provider.
type Auditor interface {
	Audit(ctx context.Context, pageURL string) (*domain.AuditScores, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

type AuditRecorder interface {
	ObserveAudit(err error, d time.Duration)
}
