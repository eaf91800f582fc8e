// Package scoring holds the pure functions that turn a report's
// classification into priority and heatmap weights. Both are evaluated
// lazily at read time and never persisted.
package scoring

import (
	"oceanwatch/internal/domain"
)

const defaultPanicIndex = 50

var severityWeights = map[domain.Severity]float64{
	domain.SeverityLow:    1,
	domain.SeverityMedium: 2,
	domain.SeverityHigh:   3,
}

var intensityBase = map[domain.Severity]float64{
	domain.SeverityLow:    0.3,
	domain.SeverityMedium: 0.6,
	domain.SeverityHigh:   1.0,
}

// PriorityScore weighs severity against the panic index. The range is
// [0.6, 2.2], not [0, 1]: consumers sort on it, so the historical scale
// is kept as is. Unknown or missing severity counts as Medium, a missing
// panic index as 50.
func PriorityScore(severity domain.Severity, panicIndex *int) float64 {
	weight, ok := severityWeights[severity]
	if !ok {
		weight = 2
	}
	return weight*0.6 + panicFraction(panicIndex, 100)*0.4
}

// HeatmapIntensity maps a report onto [0, 1] for map rendering. The panic
// index contributes at most 0.5 on top of the severity base, capped at 1.
func HeatmapIntensity(severity domain.Severity, panicIndex *int) float64 {
	base, ok := intensityBase[severity]
	if !ok {
		base = 0.5
	}
	intensity := base + panicFraction(panicIndex, 200)
	if intensity > 1.0 {
		return 1.0
	}
	return intensity
}

func panicFraction(panicIndex *int, denom float64) float64 {
	p := defaultPanicIndex
	if panicIndex != nil {
		p = *panicIndex
	}
	return float64(p) / denom
}
