package postgres

import (
	"context"
	"time"

	"oceanwatch/internal/domain"

	"github.com/google/uuid"
)

// ReportRepository is the write/read side of the single reports collection:
// independent inserts, single-document updates keyed by id, hard deletes.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	ListNewestFirst(ctx context.Context) ([]*domain.HazardReport, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsRepository serves the aggregation read paths: full scans in stable
// retrieval order plus filtered counts.
type StatsRepository interface {
	ListAll(ctx context.Context) ([]*domain.HazardReport, error)
	Count(ctx context.Context) (int64, error)
	CountBySeverity(ctx context.Context, severity domain.Severity) (int64, error)
}

func (p *Postgres) Reports() ReportRepository { return p.ReportRepo }
func (p *Postgres) Stats() StatsRepository    { return p.StatRepo }

// reportRow mirrors the reports table with nullable columns as pointers.
// normalize is the single place optional fields are defaulted; downstream
// code never re-checks optionality.
type reportRow struct {
	ID          uuid.UUID
	Name        string
	Latitude    float64
	Longitude   float64
	Address     *string
	HazardType  string
	Description string
	MediaBase64 *string
	MediaType   *string
	Severity    *string
	PanicIndex  *int
	AICategory  *string
	Status      string
	CreatedAt   time.Time
}

func (r *reportRow) normalize() *domain.HazardReport {
	report := &domain.HazardReport{
		ID:   r.ID,
		Name: r.Name,
		Location: domain.Location{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
		HazardType:  r.HazardType,
		Description: r.Description,
		PanicIndex:  r.PanicIndex,
		CreatedAt:   r.CreatedAt,
		Status:      domain.ReportStatus(r.Status),
	}
	if r.Address != nil {
		report.Location.Address = *r.Address
	}
	if r.MediaBase64 != nil {
		report.MediaBase64 = *r.MediaBase64
	}
	if r.MediaType != nil {
		report.MediaType = *r.MediaType
	}
	if r.Severity != nil {
		report.Severity = domain.Severity(*r.Severity)
	}
	if r.AICategory != nil {
		report.AICategory = *r.AICategory
	}
	return report
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
