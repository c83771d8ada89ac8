package domain

import "time"

// AuditScores is the provider-independent outcome of one audit run.
// Scores are 0-100, timings are milliseconds. Nil means the provider
// returned no value.
type AuditScores struct {
	PerformanceScore       *int     `db:"performance_score" json:"performance_score"`
	AccessibilityScore     *int     `db:"accessibility_score" json:"accessibility_score"`
	BestPracticesScore     *int     `db:"best_practices_score" json:"best_practices_score"`
	SEOScore               *int     `db:"seo_score" json:"seo_score"`
	SpeedIndex             *float64 `db:"speed_index" json:"speed_index"`
	FirstContentfulPaint   *float64 `db:"first_contentful_paint" json:"first_contentful_paint"`
	LargestContentfulPaint *float64 `db:"largest_contentful_paint" json:"largest_contentful_paint"`
}

type AuditResult struct {
	ID        int64 `db:"id" json:"id"`
	WebsiteID int64 `db:"website_id" json:"website_id"`
	AuditScores
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
