package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertPayload is queued when a High-severity report is created and
// delivered to the configured webhook by the alert dispatcher.
type AlertPayload struct {
	ReportID   uuid.UUID `json:"report_id"`
	HazardType string    `json:"hazard_type"`
	Severity   Severity  `json:"severity"`
	PanicIndex int       `json:"panic_index"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	CreatedAt  time.Time `json:"created_at"`
}
