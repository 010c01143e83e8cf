package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// RunRepository stores sitemap generation run history.
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a RunRepository.
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// runRow is the table shape; duration is stored in milliseconds.
type runRow struct {
	ID           string    `db:"id"`
	StartedAt    time.Time `db:"started_at"`
	DurationMS   int64     `db:"duration_ms"`
	TotalURLs    int       `db:"total_urls"`
	SectionCount int       `db:"section_count"`
	Status       string    `db:"status"`
	Error        string    `db:"error"`
}

// RecordRun inserts one run record.
func (r *RunRepository) RecordRun(ctx context.Context, run domain.SitemapRun) error {
	query := `
		INSERT INTO sitemap_runs (id, started_at, duration_ms, total_urls, section_count, status, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.StartedAt,
		run.Duration.Milliseconds(),
		run.TotalURLs,
		run.SectionCount,
		run.Status,
		run.Error,
	)
	if err != nil {
		return fmt.Errorf("record sitemap run: %w", err)
	}
	return nil
}

// LastRun returns the most recent run, or domain.ErrNotFound when no
// run has been recorded yet.
func (r *RunRepository) LastRun(ctx context.Context) (domain.SitemapRun, error) {
	query := `
		SELECT id, started_at, duration_ms, total_urls, section_count, status, error
		FROM sitemap_runs
		ORDER BY started_at DESC
		LIMIT 1
	`

	var row runRow
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SitemapRun{}, domain.ErrNotFound
		}
		return domain.SitemapRun{}, fmt.Errorf("last sitemap run: %w", err)
	}

	return domain.SitemapRun{
		ID:           row.ID,
		StartedAt:    row.StartedAt,
		Duration:     time.Duration(row.DurationMS) * time.Millisecond,
		TotalURLs:    row.TotalURLs,
		SectionCount: row.SectionCount,
		Status:       row.Status,
		Error:        row.Error,
	}, nil
}
