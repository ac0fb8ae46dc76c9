package repository

import (
	"context"
	"database/sql"

	"github.com/passforge/passforge-go/internal/model"
)

// AuditRepository persists generation metadata. Passwords themselves are
// never written to the database.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

const insertEventQuery = `
	INSERT INTO generation_events (length, uppercase, digits, special, score)
	VALUES (?, ?, ?, ?, ?)`

// Record inserts one generation event.
func (r *AuditRepository) Record(ctx context.Context, ev model.AuditEvent) error {
	_, err := r.db.ExecContext(ctx, insertEventQuery,
		ev.Length,
		ev.Uppercase,
		ev.Digits,
		ev.Special,
		ev.Score,
	)
	return err
}

const statsQuery = `
	SELECT COUNT(*), COALESCE(AVG(length), 0), COALESCE(AVG(score), 0), MAX(created_at)
	FROM generation_events`

// Stats aggregates the audit log into total count, averages, and the
// timestamp of the most recent generation.
func (r *AuditRepository) Stats(ctx context.Context) (model.AuditStats, error) {
	var stats model.AuditStats
	var last sql.NullTime

	row := r.db.QueryRowContext(ctx, statsQuery)
	if err := row.Scan(&stats.Total, &stats.AverageLength, &stats.AverageScore, &last); err != nil {
		return model.AuditStats{}, err
	}

	if last.Valid {
		stats.LastGeneratedAt = &last.Time
	}

	return stats, nil
}
