package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"seo_tracker/internal/domain"
)

type MetricsStore struct {
	db *sqlx.DB
}

func NewMetricsStore(db *sqlx.DB) *MetricsStore {
	return &MetricsStore{db: db}
}

// ListByWebsite returns the rows dated within [from, to], both inclusive,
// ordered by date.
func (s *MetricsStore) ListByWebsite(ctx context.Context, websiteID int64, from, to time.Time) ([]domain.SEOMetric, error) {
	query := `
		SELECT id, website_id, date, clicks, impressions, ctr, position, created_at
		FROM seo_metrics
		WHERE website_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, id`

	metrics := []domain.SEOMetric{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &metrics, query,
		websiteID,
		from.Format(time.DateOnly),
		to.Format(time.DateOnly),
	)
	if err != nil {
		return nil, fmt.Errorf("list metrics of website %d: %w", websiteID, err)
	}
	return metrics, nil
}

func (s *MetricsStore) DeleteByWebsite(ctx context.Context, websiteID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM seo_metrics WHERE website_id = $1", websiteID)
	if err != nil {
		return fmt.Errorf("delete metrics of website %d: %w", websiteID, err)
	}
	return nil
}
