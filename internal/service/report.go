package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"oceanwatch/internal/domain"
	"oceanwatch/internal/observability"
	"oceanwatch/pkg/e"
	"oceanwatch/pkg/validator"
)

type reportService struct {
	repo       ReportRepository
	classifier Classifier
	alerts     AlertQueue
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    *observability.Metrics
}

type ReportServiceDeps struct {
	Repo       ReportRepository
	Classifier Classifier
	Alerts     AlertQueue // nil disables alerting
	Clock      clockwork.Clock
	Logger     *slog.Logger
	Metrics    *observability.Metrics
}

func NewReportService(deps ReportServiceDeps) *reportService {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	return &reportService{
		repo:       deps.Repo,
		classifier: deps.Classifier,
		alerts:     deps.Alerts,
		clock:      deps.Clock,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}
}

// Create runs the short synchronous creation sequence:
// validate → classify (single attempt, fallback inside) → persist.
func (s *reportService) Create(ctx context.Context, req domain.CreateReportRequest) (*domain.HazardReport, error) {
	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("report validation failed", slog.Any("error", err))
		return nil, e.Wrap(err.Error(), e.ErrInvalidInput)
	}

	report := &domain.HazardReport{
		ID:   uuid.New(),
		Name: req.Name,
		Location: domain.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Address:   req.Address,
		},
		HazardType:  req.HazardType,
		Description: req.Description,
		MediaBase64: req.MediaBase64,
		MediaType:   req.MediaType,
		CreatedAt:   s.clock.Now().UTC(),
		Status:      domain.StatusPending,
	}

	// Severity and panic index are written together; the classifier
	// contract guarantees a fully populated result.
	c := s.classifier.Classify(ctx, req.Description, req.HazardType)
	panicIndex := c.PanicIndex
	report.Severity = c.Severity
	report.PanicIndex = &panicIndex
	report.AICategory = c.AICategory

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	s.metrics.ReportsCreated.Inc()

	s.logger.Info("report created",
		slog.String("id", report.ID.String()),
		slog.String("hazard_type", report.HazardType),
		slog.String("severity", string(report.Severity)),
		slog.Int("panic_index", panicIndex),
	)

	if report.Severity == domain.SeverityHigh && s.alerts != nil {
		payload := domain.AlertPayload{
			ReportID:   report.ID,
			HazardType: report.HazardType,
			Severity:   report.Severity,
			PanicIndex: panicIndex,
			Lat:        report.Location.Latitude,
			Lng:        report.Location.Longitude,
			CreatedAt:  report.CreatedAt,
		}
		if err := s.alerts.Enqueue(ctx, payload); err != nil {
			s.logger.Error("alert enqueue failed", slog.String("id", report.ID.String()), slog.Any("error", err))
		} else {
			s.metrics.AlertsQueued.Inc()
		}
	}

	return report, nil
}

func (s *reportService) List(ctx context.Context) ([]*domain.HazardReport, error) {
	return s.repo.ListNewestFirst(ctx)
}

func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.ReportsDeleted.Inc()
	s.logger.Info("report deleted", slog.String("id", id.String()))
	return nil
}

func (s *reportService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !report.Status.CanTransitionTo(status) {
		s.logger.Warn("illegal status transition",
			slog.String("id", id.String()),
			slog.String("from", string(report.Status)),
			slog.String("to", string(status)),
		)
		return e.Wrap("status transition", e.ErrConflict)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
