//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"seo_tracker/internal/domain"
	"seo_tracker/internal/testutil"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_websites.up.sql"),
			filepath.Join(migrationsPath, "002_create_seo_metrics.up.sql"),
			filepath.Join(migrationsPath, "003_create_audit_results.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM seo_metrics")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM audit_results")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM websites")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createWebsite(url string) *domain.Website {
	website := &domain.Website{URL: url, Name: "Site"}
	s.Require().NoError(NewWebsiteStore(s.db).Create(s.ctx, website))
	return website
}

func (s *PostgresIntegrationSuite) insertMetric(websiteID int64, date string) {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO seo_metrics (website_id, date, clicks, impressions, ctr, position) VALUES ($1, $2, 1, 10, 0.1, 4.5)",
		websiteID, date,
	)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) count(query string, args ...any) int {
	var n int
	s.Require().NoError(s.db.GetContext(s.ctx, &n, query, args...))
	return n
}

func (s *PostgresIntegrationSuite) TestWebsiteStore_CreateAndList() {
	store := NewWebsiteStore(s.db)

	created := s.createWebsite("https://ex.com")
	s.Greater(created.ID, int64(0))
	s.False(created.CreatedAt.IsZero())

	websites, err := store.List(s.ctx)
	s.NoError(err)
	s.Require().Len(websites, 1)
	s.Equal("https://ex.com", websites[0].URL)
	s.Equal("Site", websites[0].Name)
	s.False(websites[0].IsVerified)
	s.Nil(websites[0].LastAudit)
}

func (s *PostgresIntegrationSuite) TestWebsiteStore_Create_Duplicate() {
	store := NewWebsiteStore(s.db)
	s.createWebsite("https://dup.com")

	err := store.Create(s.ctx, &domain.Website{URL: "https://dup.com", Name: "Again"})
	s.ErrorIs(err, domain.ErrConflict)
	s.Equal(1, s.count("SELECT COUNT(*) FROM websites"))
}

func (s *PostgresIntegrationSuite) TestWebsiteStore_GetByID_NotFound() {
	_, err := NewWebsiteStore(s.db).GetByID(s.ctx, 999999)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestWebsiteStore_UpdateLastAudit() {
	store := NewWebsiteStore(s.db)
	website := s.createWebsite("https://audit.com")
	at := time.Now().UTC().Truncate(time.Microsecond)

	s.NoError(store.UpdateLastAudit(s.ctx, website.ID, at))

	got, err := store.GetByID(s.ctx, website.ID)
	s.NoError(err)
	s.Require().NotNil(got.LastAudit)
	s.WithinDuration(at, *got.LastAudit, time.Millisecond)
}

func (s *PostgresIntegrationSuite) TestMetricsStore_ListByWebsite_InclusiveWindow() {
	store := NewMetricsStore(s.db)
	website := s.createWebsite("https://metrics.com")
	other := s.createWebsite("https://other.com")

	s.insertMetric(website.ID, "2026-03-03")
	s.insertMetric(website.ID, "2026-02-01")
	s.insertMetric(website.ID, "2026-01-31")
	s.insertMetric(website.ID, "2026-03-04")
	s.insertMetric(website.ID, "2026-02-15")
	s.insertMetric(other.ID, "2026-02-15")

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	metrics, err := store.ListByWebsite(s.ctx, website.ID, from, to)
	s.NoError(err)
	s.Require().Len(metrics, 3)
	s.Equal("2026-02-01", metrics[0].Date.Format(time.DateOnly))
	s.Equal("2026-02-15", metrics[1].Date.Format(time.DateOnly))
	s.Equal("2026-03-03", metrics[2].Date.Format(time.DateOnly))
}

func (s *PostgresIntegrationSuite) TestAuditStore_InsertAndList() {
	store := NewAuditStore(s.db)
	website := s.createWebsite("https://scores.com")

	result := &domain.AuditResult{
		WebsiteID: website.ID,
		AuditScores: domain.AuditScores{
			PerformanceScore:       testutil.Ptr(88),
			AccessibilityScore:     testutil.Ptr(95),
			BestPracticesScore:     nil,
			SEOScore:               testutil.Ptr(100),
			SpeedIndex:             testutil.Ptr(1200.5),
			FirstContentfulPaint:   testutil.Ptr(900.25),
			LargestContentfulPaint: testutil.Ptr(1800.0),
		},
	}
	s.NoError(store.Insert(s.ctx, result))
	s.Greater(result.ID, int64(0))

	results, err := store.ListByWebsite(s.ctx, website.ID)
	s.NoError(err)
	s.Require().Len(results, 1)
	s.Equal(88, *results[0].PerformanceScore)
	s.Nil(results[0].BestPracticesScore)
	s.InDelta(900.25, *results[0].FirstContentfulPaint, 1e-9)
}

func (s *PostgresIntegrationSuite) TestCascadeDelete_Commit() {
	tm := NewTransactionManager(s.db)
	websites := NewWebsiteStore(s.db)
	metrics := NewMetricsStore(s.db)
	audits := NewAuditStore(s.db)

	website := s.createWebsite("https://gone.com")
	keep := s.createWebsite("https://keep.com")
	s.insertMetric(website.ID, "2026-02-01")
	s.insertMetric(keep.ID, "2026-02-01")
	s.NoError(audits.Insert(s.ctx, &domain.AuditResult{WebsiteID: website.ID}))

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := metrics.DeleteByWebsite(ctx, website.ID); err != nil {
			return err
		}
		if err := audits.DeleteByWebsite(ctx, website.ID); err != nil {
			return err
		}
		return websites.Delete(ctx, website.ID)
	})
	s.NoError(err)

	s.Equal(0, s.count("SELECT COUNT(*) FROM seo_metrics WHERE website_id = $1", website.ID))
	s.Equal(0, s.count("SELECT COUNT(*) FROM audit_results WHERE website_id = $1", website.ID))
	s.Equal(1, s.count("SELECT COUNT(*) FROM websites"))
	s.Equal(1, s.count("SELECT COUNT(*) FROM seo_metrics"))
}

func (s *PostgresIntegrationSuite) TestCascadeDelete_RollbackLeavesRows() {
	tm := NewTransactionManager(s.db)
	metrics := NewMetricsStore(s.db)

	website := s.createWebsite("https://stays.com")
	s.insertMetric(website.ID, "2026-02-01")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := metrics.DeleteByWebsite(ctx, website.ID); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	s.Equal(1, s.count("SELECT COUNT(*) FROM seo_metrics WHERE website_id = $1", website.ID))
}
