package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"oceanwatch/internal/domain"
	"oceanwatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `id, name, latitude, longitude, address, hazard_type, description,
	   media_base64, media_type, severity, panic_index, ai_category, status, created_at`

func (p *ReportRepo) Create(ctx context.Context, report *domain.HazardReport) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO reports (id, name, latitude, longitude, address, hazard_type, description,
							 media_base64, media_type, severity, panic_index, ai_category, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Name,
		report.Location.Latitude,
		report.Location.Longitude,
		nullIfEmpty(report.Location.Address),
		report.HazardType,
		report.Description,
		nullIfEmpty(report.MediaBase64),
		nullIfEmpty(report.MediaType),
		nullIfEmpty(string(report.Severity)),
		report.PanicIndex,
		nullIfEmpty(report.AICategory),
		report.Status,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) ListNewestFirst(ctx context.Context) ([]*domain.HazardReport, error) {
	const op = "postgres.Report.ListNewestFirst"

	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		ORDER BY created_at DESC, id
	`, reportColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanReports(ctx, op, rows, p.logger)
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	const op = "postgres.Report.Get"

	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		WHERE id = $1
	`, reportColumns)

	var row reportRow
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.Name,
		&row.Latitude,
		&row.Longitude,
		&row.Address,
		&row.HazardType,
		&row.Description,
		&row.MediaBase64,
		&row.MediaType,
		&row.Severity,
		&row.PanicIndex,
		&row.AICategory,
		&row.Status,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return row.normalize(), nil
}

func (p *ReportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	const op = "postgres.Report.UpdateStatus"

	const query = `
		UPDATE reports
		SET status = $2
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Report.Delete"

	const query = `DELETE FROM reports WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanReports(ctx context.Context, op string, rows pgx.Rows, logger *slog.Logger) ([]*domain.HazardReport, error) {
	var reports []*domain.HazardReport
	for rows.Next() {
		var row reportRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Latitude,
			&row.Longitude,
			&row.Address,
			&row.HazardType,
			&row.Description,
			&row.MediaBase64,
			&row.MediaType,
			&row.Severity,
			&row.PanicIndex,
			&row.AICategory,
			&row.Status,
			&row.CreatedAt,
		); err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, row.normalize())
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}
