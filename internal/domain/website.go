package domain

import "time"

type Website struct {
	ID         int64      `db:"id" json:"id"`
	URL        string     `db:"url" json:"url"`
	Name       string     `db:"name" json:"name"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	LastAudit  *time.Time `db:"last_audit" json:"last_audit"`
	IsVerified bool       `db:"is_verified" json:"is_verified"`
}

// SEOMetric is one day of search-visibility data for a website.
type SEOMetric struct {
	ID          int64     `db:"id"`
	WebsiteID   int64     `db:"website_id"`
	Date        time.Time `db:"date"`
	Clicks      int       `db:"clicks"`
	Impressions int       `db:"impressions"`
	CTR         float64   `db:"ctr"`
	Position    float64   `db:"position"`
	CreatedAt   time.Time `db:"created_at"`
}
