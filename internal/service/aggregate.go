package service

import (
	"context"
	"math"
	"sort"

	"oceanwatch/internal/domain"
	"oceanwatch/internal/scoring"
)

const topPriorityLimit = 10

type aggregationService struct {
	repo AggregationRepository
}

func NewAggregationService(repo AggregationRepository) *aggregationService {
	return &aggregationService{repo: repo}
}

// PriorityReports scores every stored report and returns the ten most
// urgent, highest score first. The sort is stable so reports with equal
// scores keep their retrieval order.
func (s *aggregationService) PriorityReports(ctx context.Context) ([]domain.PriorityReport, error) {
	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.PriorityReport, 0, len(reports))
	for _, r := range reports {
		ranked = append(ranked, domain.PriorityReport{
			Report:        *r,
			PriorityScore: scoring.PriorityScore(r.Severity, r.PanicIndex),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})

	if len(ranked) > topPriorityLimit {
		ranked = ranked[:topPriorityLimit]
	}
	return ranked, nil
}

// Heatmap maps every report to a weighted point, retrieval order preserved.
// Overlapping points are left to the consumer to blend.
func (s *aggregationService) Heatmap(ctx context.Context) ([]domain.HeatmapPoint, error) {
	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]domain.HeatmapPoint, 0, len(reports))
	for _, r := range reports {
		points = append(points, domain.HeatmapPoint{
			Lat:        r.Location.Latitude,
			Lng:        r.Location.Longitude,
			Intensity:  scoring.HeatmapIntensity(r.Severity, r.PanicIndex),
			HazardType: r.HazardType,
			Severity:   r.Severity,
		})
	}
	return points, nil
}

func (s *aggregationService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalReports: total,
		HazardTypes:  map[string]int64{},
	}
	if total == 0 {
		return stats, nil
	}

	high, err := s.repo.CountBySeverity(ctx, domain.SeverityHigh)
	if err != nil {
		return nil, err
	}
	medium, err := s.repo.CountBySeverity(ctx, domain.SeverityMedium)
	if err != nil {
		return nil, err
	}
	low, err := s.repo.CountBySeverity(ctx, domain.SeverityLow)
	if err != nil {
		return nil, err
	}
	stats.SeverityBreakdown = domain.SeverityBreakdown{High: high, Medium: medium, Low: low}
	stats.ActiveAlerts = high

	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var totalPanic int64
	for _, r := range reports {
		hazardType := r.HazardType
		if hazardType == "" {
			hazardType = "Other"
		}
		stats.HazardTypes[hazardType]++

		if r.PanicIndex != nil {
			totalPanic += int64(*r.PanicIndex)
		} else {
			totalPanic += 50
		}
	}
	stats.AveragePanicIndex = round1(float64(totalPanic) / float64(total))

	return stats, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
