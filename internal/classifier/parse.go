package classifier

import (
	"encoding/json"
	"math"
	"strings"

	"oceanwatch/internal/domain"
)

// rawClassification tolerates partially valid model output: every key is
// optional and defaulted independently. panic_index is a float because
// models occasionally emit fractional values.
type rawClassification struct {
	Severity   *string  `json:"severity"`
	PanicIndex *float64 `json:"panic_index"`
	AICategory *string  `json:"ai_category"`
	Reasoning  *string  `json:"reasoning"`
}

// Fallback is the fixed default classification used whenever the external
// call fails or returns something unparsable.
func Fallback(hazardType string) domain.Classification {
	return domain.Classification{
		Severity:   domain.SeverityMedium,
		PanicIndex: 50,
		AICategory: hazardType,
		Reasoning:  "Default classification applied",
	}
}

func parseClassification(raw, hazardType string) (domain.Classification, error) {
	var rc rawClassification
	if err := json.Unmarshal([]byte(stripFences(raw)), &rc); err != nil {
		return domain.Classification{}, err
	}

	c := domain.Classification{
		Severity:   domain.SeverityMedium,
		PanicIndex: 50,
		AICategory: hazardType,
		Reasoning:  "AI analysis completed",
	}
	if rc.Severity != nil && *rc.Severity != "" {
		c.Severity = domain.Severity(*rc.Severity)
	}
	if rc.PanicIndex != nil {
		c.PanicIndex = clamp(int(math.Round(*rc.PanicIndex)), 0, 100)
	}
	if rc.AICategory != nil && *rc.AICategory != "" {
		c.AICategory = *rc.AICategory
	}
	if rc.Reasoning != nil && *rc.Reasoning != "" {
		c.Reasoning = *rc.Reasoning
	}
	return c, nil
}

// stripFences removes markdown code fences some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
