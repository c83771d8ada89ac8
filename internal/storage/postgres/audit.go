package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"seo_tracker/internal/domain"
)

type AuditStore struct {
	db *sqlx.DB
}

func NewAuditStore(db *sqlx.DB) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) Insert(ctx context.Context, result *domain.AuditResult) error {
	query := `
		INSERT INTO audit_results (
			website_id, performance_score, accessibility_score, best_practices_score,
			seo_score, speed_index, first_contentful_paint, largest_contentful_paint
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		result.WebsiteID,
		result.PerformanceScore,
		result.AccessibilityScore,
		result.BestPracticesScore,
		result.SEOScore,
		result.SpeedIndex,
		result.FirstContentfulPaint,
		result.LargestContentfulPaint,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit result for website %d: %w", result.WebsiteID, err)
	}
	return nil
}

// ListByWebsite returns the audit history of a website, newest first.
func (s *AuditStore) ListByWebsite(ctx context.Context, websiteID int64) ([]domain.AuditResult, error) {
	query := `
		SELECT id, website_id, performance_score, accessibility_score, best_practices_score,
		       seo_score, speed_index, first_contentful_paint, largest_contentful_paint, created_at
		FROM audit_results
		WHERE website_id = $1
		ORDER BY created_at DESC, id DESC`

	results := []domain.AuditResult{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &results, query, websiteID); err != nil {
		return nil, fmt.Errorf("list audits of website %d: %w", websiteID, err)
	}
	return results, nil
}

func (s *AuditStore) DeleteByWebsite(ctx context.Context, websiteID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM audit_results WHERE website_id = $1", websiteID)
	if err != nil {
		return fmt.Errorf("delete audits of website %d: %w", websiteID, err)
	}
	return nil
}
