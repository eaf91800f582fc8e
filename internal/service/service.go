package service

import (
	"context"

	"github.com/google/uuid"

	"oceanwatch/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// PublicReportService covers the citizen-facing write and list paths.
type PublicReportService interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (*domain.HazardReport, error)
	List(ctx context.Context) ([]*domain.HazardReport, error)
}

// AdminReportService covers moderation: hard delete and status transitions.
type AdminReportService interface {
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
}

// AggregationService derives the read projections from the full report set.
// Every call re-scans the stored collection; nothing is cached.
type AggregationService interface {
	PriorityReports(ctx context.Context) ([]domain.PriorityReport, error)
	Heatmap(ctx context.Context) ([]domain.HeatmapPoint, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type WeatherService interface {
	Current(ctx context.Context, lat, lon float64) (*domain.WeatherData, error)
}

// ReportRepository is the document-store contract the report service needs.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	ListNewestFirst(ctx context.Context) ([]*domain.HazardReport, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AggregationRepository is the read-side slice of the store: full scans in
// stable retrieval order plus filtered counts.
type AggregationRepository interface {
	ListAll(ctx context.Context) ([]*domain.HazardReport, error)
	Count(ctx context.Context) (int64, error)
	CountBySeverity(ctx context.Context, severity domain.Severity) (int64, error)
}

// Classifier enriches a report with severity, panic index and category.
// By contract it cannot fail; failures resolve to a default result inside.
type Classifier interface {
	Classify(ctx context.Context, description, hazardType string) domain.Classification
}

// AlertQueue accepts high-severity alert payloads for async delivery.
type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type Service struct {
	PublicReportService PublicReportService
	AdminReportService  AdminReportService
	AggregationService  AggregationService
	WeatherService      WeatherService
}

func NewService(
	public PublicReportService,
	admin AdminReportService,
	aggregation AggregationService,
	weather WeatherService,
) *Service {
	return &Service{
		PublicReportService: public,
		AdminReportService:  admin,
		AggregationService:  aggregation,
		WeatherService:      weather,
	}
}
