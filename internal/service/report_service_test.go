package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"oceanwatch/internal/domain"
	"oceanwatch/internal/observability"
	"oceanwatch/internal/service"
	mock_service "oceanwatch/internal/service/mocks"
	"oceanwatch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func validCreateRequest() domain.CreateReportRequest {
	return domain.CreateReportRequest{
		Name:        "A. Fisher",
		Latitude:    12.97,
		Longitude:   77.59,
		Address:     "Marina Beach",
		HazardType:  "Tsunami",
		Description: "huge waves pulling back from the shore",
	}
}

func TestReportService_Create_ClassifiesAndPersists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	classifier := mock_service.NewMockClassifier(ctrl)
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	req := validCreateRequest()

	classifier.EXPECT().
		Classify(gomock.Any(), req.Description, req.HazardType).
		Return(domain.Classification{
			Severity:   domain.SeverityMedium,
			PanicIndex: 40,
			AICategory: "Coastal Flooding",
			Reasoning:  "moderate risk",
		}).
		Times(1)

	var persisted *domain.HazardReport
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.HazardReport) error {
			persisted = r
			return nil
		}).
		Times(1)

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:       repo,
		Classifier: classifier,
		Clock:      clockwork.NewFakeClockAt(now),
		Logger:     newTestLogger(),
		Metrics:    observability.NewMetricsForTesting(),
	})

	got, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if persisted != got {
		t.Fatal("returned report differs from persisted report")
	}

	if got.ID == uuid.Nil {
		t.Error("id not assigned")
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("created_at: got %v want %v", got.CreatedAt, now)
	}
	if got.Status != domain.StatusPending {
		t.Errorf("status: got %q want pending", got.Status)
	}
	// severity and panic_index are written together
	if got.Severity != domain.SeverityMedium {
		t.Errorf("severity: got %q", got.Severity)
	}
	if got.PanicIndex == nil || *got.PanicIndex != 40 {
		t.Errorf("panic_index: got %v want 40", got.PanicIndex)
	}
	if got.AICategory != "Coastal Flooding" {
		t.Errorf("ai_category: got %q", got.AICategory)
	}
}

func TestReportService_Create_InvalidLatitude_RejectedBeforeClassification(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT on classifier or repo: neither may be touched
	repo := mock_service.NewMockReportRepository(ctrl)
	classifier := mock_service.NewMockClassifier(ctrl)

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:       repo,
		Classifier: classifier,
		Logger:     newTestLogger(),
		Metrics:    observability.NewMetricsForTesting(),
	})

	req := validCreateRequest()
	req.Latitude = 123.45

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReportService_Create_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:       mock_service.NewMockReportRepository(ctrl),
		Classifier: mock_service.NewMockClassifier(ctrl),
		Logger:     newTestLogger(),
		Metrics:    observability.NewMetricsForTesting(),
	})

	for _, mutate := range []func(*domain.CreateReportRequest){
		func(r *domain.CreateReportRequest) { r.Name = "" },
		func(r *domain.CreateReportRequest) { r.HazardType = "" },
		func(r *domain.CreateReportRequest) { r.Description = "" },
	} {
		req := validCreateRequest()
		mutate(&req)
		if _, err := svc.Create(context.Background(), req); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", req, err)
		}
	}
}

func TestReportService_Create_HighSeverity_QueuesAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	classifier := mock_service.NewMockClassifier(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Classification{
			Severity:   domain.SeverityHigh,
			PanicIndex: 90,
			AICategory: "Tsunami",
			Reasoning:  "evacuation underway",
		})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	alerts.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.AlertPayload) error {
			if p.Severity != domain.SeverityHigh || p.PanicIndex != 90 {
				t.Errorf("unexpected alert payload: %+v", p)
			}
			return nil
		}).
		Times(1)

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:       repo,
		Classifier: classifier,
		Alerts:     alerts,
		Logger:     newTestLogger(),
		Metrics:    observability.NewMetricsForTesting(),
	})

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestReportService_Create_AlertEnqueueFailure_DoesNotFailCreation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	classifier := mock_service.NewMockClassifier(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Classification{Severity: domain.SeverityHigh, PanicIndex: 95, AICategory: "Cyclone", Reasoning: "x"})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	alerts.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:       repo,
		Classifier: classifier,
		Alerts:     alerts,
		Logger:     newTestLogger(),
		Metrics:    observability.NewMetricsForTesting(),
	})

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("creation must survive alert queue failure, got %v", err)
	}
}

func TestReportService_Create_MediumSeverity_NoAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	classifier := mock_service.NewMockClassifier(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl) // no EXPECT: must not be called

	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Classification{Severity: domain.SeverityMedium, PanicIndex: 50, AICategory: "Flood", Reasoning: "y"})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:       repo,
		Classifier: classifier,
		Alerts:     alerts,
		Logger:     newTestLogger(),
		Metrics:    observability.NewMetricsForTesting(),
	})

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestReportService_Delete_NotFoundPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(e.ErrNotFound)

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:    repo,
		Logger:  newTestLogger(),
		Metrics: observability.NewMetricsForTesting(),
	})

	if err := svc.Delete(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReportService_UpdateStatus_AllowedTransition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(&domain.HazardReport{ID: id, Status: domain.StatusPending}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.StatusReviewed).Return(nil)

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:    repo,
		Logger:  newTestLogger(),
		Metrics: observability.NewMetricsForTesting(),
	})

	if err := svc.UpdateStatus(context.Background(), id, domain.StatusReviewed); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestReportService_UpdateStatus_IllegalTransition_Conflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(&domain.HazardReport{ID: id, Status: domain.StatusResolved}, nil)

	svc := service.NewReportService(service.ReportServiceDeps{
		Repo:    repo,
		Logger:  newTestLogger(),
		Metrics: observability.NewMetricsForTesting(),
	})

	if err := svc.UpdateStatus(context.Background(), id, domain.StatusReviewed); !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
