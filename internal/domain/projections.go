package domain

// PriorityReport is a read-time projection, recomputed on every query.
type PriorityReport struct {
	Report        HazardReport `json:"report"`
	PriorityScore float64      `json:"priority_score"`
}

type HeatmapPoint struct {
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Intensity  float64  `json:"intensity"` // 0..1
	HazardType string   `json:"hazard_type"`
	Severity   Severity `json:"severity,omitempty"`
}

type SeverityBreakdown struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

type DashboardStats struct {
	TotalReports      int64             `json:"total_reports"`
	SeverityBreakdown SeverityBreakdown `json:"severity_breakdown"`
	HazardTypes       map[string]int64  `json:"hazard_types"`
	AveragePanicIndex float64           `json:"average_panic_index"`
	ActiveAlerts      int64             `json:"active_alerts"`
}
