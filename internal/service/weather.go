package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"oceanwatch/internal/domain"
)

// weatherService returns a fixed synthetic reading. Real provider
// integration is environment-dependent glue and deliberately absent.
type weatherService struct {
	clock clockwork.Clock
}

func NewWeatherService(clock clockwork.Clock) *weatherService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &weatherService{clock: clock}
}

func (s *weatherService) Current(ctx context.Context, lat, lon float64) (*domain.WeatherData, error) {
	return &domain.WeatherData{
		Location:      fmt.Sprintf("%.2f, %.2f", lat, lon),
		Temperature:   28.5,
		Humidity:      75,
		WindSpeed:     15.2,
		WindDirection: 180,
		Description:   "Partly cloudy with moderate winds",
		Timestamp:     s.clock.Now().UTC(),
	}, nil
}
