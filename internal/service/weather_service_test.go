package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"oceanwatch/internal/service"
)

func TestWeatherService_Current_SyntheticReading(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	svc := service.NewWeatherService(clockwork.NewFakeClockAt(now))

	got, err := svc.Current(context.Background(), 12.9716, 77.5946)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.Location != "12.97, 77.59" {
		t.Errorf("location: got %q", got.Location)
	}
	if got.Temperature != 28.5 || got.Humidity != 75 || got.WindSpeed != 15.2 || got.WindDirection != 180 {
		t.Errorf("unexpected reading: %+v", got)
	}
	if !got.Timestamp.Equal(now) {
		t.Errorf("timestamp: got %v want %v", got.Timestamp, now)
	}
}
