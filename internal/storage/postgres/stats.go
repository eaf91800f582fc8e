package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"oceanwatch/internal/domain"
	"oceanwatch/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

// ListAll returns every report in insertion order. The id tie-break keeps
// the order stable for reports sharing a created_at timestamp.
func (p *StatsRepo) ListAll(ctx context.Context) ([]*domain.HazardReport, error) {
	const op = "postgres.Stats.ListAll"

	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		ORDER BY created_at, id
	`, reportColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanReports(ctx, op, rows, p.logger)
}

func (p *StatsRepo) Count(ctx context.Context) (int64, error) {
	const op = "postgres.Stats.Count"

	const query = `SELECT COUNT(*) FROM reports`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

func (p *StatsRepo) CountBySeverity(ctx context.Context, severity domain.Severity) (int64, error) {
	const op = "postgres.Stats.CountBySeverity"

	if severity == "" {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `SELECT COUNT(*) FROM reports WHERE severity = $1`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, severity).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("severity", string(severity)),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
