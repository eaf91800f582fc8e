//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"oceanwatch/internal/domain"
	"oceanwatch/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	tc         testcontainers.Container
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := migrationFiles.ReadFile("migrations/0001_create_reports.up.sql")
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, string(sql))
	return err
}

func truncateReports(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE reports`)
	if err != nil {
		t.Fatalf("truncate reports: %v", err)
	}
}

func intPtr(v int) *int { return &v }

func newTestReport(created time.Time) *domain.HazardReport {
	return &domain.HazardReport{
		ID:   uuid.New(),
		Name: "Priya",
		Location: domain.Location{
			Latitude:  13.0827,
			Longitude: 80.2707,
			Address:   "Marina Beach",
		},
		HazardType:  "tsunami",
		Description: "unusually fast receding waterline",
		Severity:    domain.SeverityHigh,
		PanicIndex:  intPtr(85),
		AICategory:  "tsunami",
		CreatedAt:   created,
		Status:      domain.StatusPending,
	}
}

func TestReportRepo_Create_Get_RoundTrip(t *testing.T) {
	truncateReports(t)

	repo := NewReportRepo(testPool, testLogger)

	want := newTestReport(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	if err := repo.Create(context.Background(), want); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Name != want.Name || got.HazardType != want.HazardType || got.Description != want.Description {
		t.Fatalf("core fields mismatch: %+v", got)
	}
	if got.Location != want.Location {
		t.Fatalf("location mismatch got=%+v want=%+v", got.Location, want.Location)
	}
	if got.Severity != domain.SeverityHigh {
		t.Fatalf("severity mismatch got=%v", got.Severity)
	}
	if got.PanicIndex == nil || *got.PanicIndex != 85 {
		t.Fatalf("panic index mismatch got=%v", got.PanicIndex)
	}
	if got.AICategory != "tsunami" {
		t.Fatalf("ai category mismatch got=%q", got.AICategory)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("status mismatch got=%v", got.Status)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created_at mismatch got=%v want=%v", got.CreatedAt, want.CreatedAt)
	}
}

func TestReportRepo_Create_NullableFieldsEmpty(t *testing.T) {
	truncateReports(t)

	repo := NewReportRepo(testPool, testLogger)

	rep := newTestReport(time.Now().UTC())
	rep.Location.Address = ""
	rep.MediaBase64 = ""
	rep.MediaType = ""
	rep.Severity = ""
	rep.PanicIndex = nil
	rep.AICategory = ""

	if err := repo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Location.Address != "" || got.MediaBase64 != "" || got.Severity != "" || got.AICategory != "" {
		t.Fatalf("expected empty optional fields, got: %+v", got)
	}
	if got.PanicIndex != nil {
		t.Fatalf("expected nil panic index, got %v", *got.PanicIndex)
	}
}

func TestReportRepo_ListNewestFirst_Order(t *testing.T) {
	truncateReports(t)

	repo := NewReportRepo(testPool, testLogger)

	for i := 0; i < 3; i++ {
		rep := newTestReport(time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC))
		if err := repo.Create(context.Background(), rep); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := repo.ListNewestFirst(context.Background())
	if err != nil {
		t.Fatalf("ListNewestFirst: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].CreatedAt.Before(list[i].CreatedAt) {
			t.Fatalf("expected DESC order by created_at")
		}
	}
}

func TestReportRepo_UpdateStatus(t *testing.T) {
	truncateReports(t)

	repo := NewReportRepo(testPool, testLogger)

	rep := newTestReport(time.Now().UTC())
	if err := repo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdateStatus(context.Background(), rep.ID, domain.StatusReviewed); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.StatusReviewed {
		t.Fatalf("status mismatch got=%v", got.Status)
	}

	err = repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusResolved)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestReportRepo_Delete(t *testing.T) {
	truncateReports(t)

	repo := NewReportRepo(testPool, testLogger)

	rep := newTestReport(time.Now().UTC())
	if err := repo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), rep.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.Get(context.Background(), rep.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}

	err = repo.Delete(context.Background(), rep.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestStatsRepo_Counts(t *testing.T) {
	truncateReports(t)

	reportRepo := NewReportRepo(testPool, testLogger)
	statsRepo := NewStatsRepo(testPool, testLogger)

	severities := []domain.Severity{domain.SeverityHigh, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow}
	for i, sev := range severities {
		rep := newTestReport(time.Date(2026, 2, 1, 0, 0, i, 0, time.UTC))
		rep.Severity = sev
		if err := reportRepo.Create(context.Background(), rep); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	total, err := statsRepo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected total=4 got=%d", total)
	}

	high, err := statsRepo.CountBySeverity(context.Background(), domain.SeverityHigh)
	if err != nil {
		t.Fatalf("CountBySeverity: %v", err)
	}
	if high != 2 {
		t.Fatalf("expected high=2 got=%d", high)
	}

	if _, err := statsRepo.CountBySeverity(context.Background(), ""); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestStatsRepo_ListAll_InsertionOrder(t *testing.T) {
	truncateReports(t)

	reportRepo := NewReportRepo(testPool, testLogger)
	statsRepo := NewStatsRepo(testPool, testLogger)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		rep := newTestReport(time.Date(2026, 3, 1, 0, 0, i, 0, time.UTC))
		if err := reportRepo.Create(context.Background(), rep); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, rep.ID)
	}

	list, err := statsRepo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(list))
	}
	for i, id := range ids {
		if list[i].ID != id {
			t.Fatalf("expected insertion order, position %d got %s want %s", i, list[i].ID, id)
		}
	}
}
