package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"seo_tracker/internal/domain"
)

type WebsiteStore struct {
	db *sqlx.DB
}

func NewWebsiteStore(db *sqlx.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// Create inserts the website and fills in the generated columns.
// A duplicate url yields domain.ErrConflict.
func (s *WebsiteStore) Create(ctx context.Context, website *domain.Website) error {
	query := `
		INSERT INTO websites (url, name)
		VALUES ($1, $2)
		RETURNING id, created_at, is_verified`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, website.URL, website.Name).
		Scan(&website.ID, &website.CreatedAt, &website.IsVerified)
	if isUniqueViolation(err) {
		return fmt.Errorf("insert website %q: %w", website.URL, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert website: %w", err)
	}
	return nil
}

func (s *WebsiteStore) List(ctx context.Context) ([]domain.Website, error) {
	query := `
		SELECT id, url, name, created_at, last_audit, is_verified
		FROM websites
		ORDER BY id`

	websites := []domain.Website{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &websites, query); err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	return websites, nil
}

func (s *WebsiteStore) GetByID(ctx context.Context, id int64) (*domain.Website, error) {
	query := `
		SELECT id, url, name, created_at, last_audit, is_verified
		FROM websites
		WHERE id = $1`

	var website domain.Website
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &website, query, id); err != nil {
		return nil, notFoundIfNoRows(err, fmt.Sprintf("get website %d", id))
	}
	return &website, nil
}

func (s *WebsiteStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM websites WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete website %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("delete website %d", id))
}

func (s *WebsiteStore) UpdateLastAudit(ctx context.Context, id int64, at time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE websites SET last_audit = $1 WHERE id = $2",
		at, id,
	)
	if err != nil {
		return fmt.Errorf("update last audit of website %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("update last audit of website %d", id))
}
