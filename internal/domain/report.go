package domain

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusReviewed ReportStatus = "reviewed"
	StatusResolved ReportStatus = "resolved"
)

// CanTransitionTo reports whether a status change is allowed.
// Statuses only move forward: pending → reviewed/resolved, reviewed → resolved.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusReviewed || next == StatusResolved
	case StatusReviewed:
		return next == StatusResolved
	default:
		return false
	}
}

type Location struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
	Address   string  `json:"address,omitempty"`
}

// HazardReport is a citizen-submitted ocean hazard observation.
// Severity, PanicIndex and AICategory are written once by the classification
// step; everything else except Status is immutable after creation.
type HazardReport struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Location    Location     `json:"location"`
	HazardType  string       `json:"hazard_type"` // Cyclone, Oil Spill, Flood, Tsunami, Other — open set
	Description string       `json:"description"`
	MediaBase64 string       `json:"media_base64,omitempty"`
	MediaType   string       `json:"media_type,omitempty"`
	Severity    Severity     `json:"severity,omitempty"`
	PanicIndex  *int         `json:"panic_index,omitempty"` // 0..100
	AICategory  string       `json:"ai_category,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Status      ReportStatus `json:"status"`
}
