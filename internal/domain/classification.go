package domain

// Classification is the normalized result of the external text classifier.
// The adapter guarantees every field is populated; callers never re-check.
type Classification struct {
	Severity   Severity `json:"severity"`
	PanicIndex int      `json:"panic_index"` // 0..100
	AICategory string   `json:"ai_category"`
	Reasoning  string   `json:"reasoning"`
}
