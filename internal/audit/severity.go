package audit

import (
	"loan-audit/internal/entity"
)

// Thresholds configures the shared severity scaler. A nil tier is not
// configured and can never be returned by Scale.
type Thresholds struct {
	Low      *float64
	Moderate *float64
	High     *float64
	Critical *float64
}

// Scale returns the highest tier whose threshold the value meets or
// exceeds. When no configured threshold is met it reports false.
func Scale(value float64, t Thresholds) (entity.Severity, bool) {
	switch {
	case t.Critical != nil && value >= *t.Critical:
		return entity.SeverityCritical, true
	case t.High != nil && value >= *t.High:
		return entity.SeverityHigh, true
	case t.Moderate != nil && value >= *t.Moderate:
		return entity.SeverityModerate, true
	case t.Low != nil && value >= *t.Low:
		return entity.SeverityLow, true
	default:
		return entity.SeverityLow, false
	}
}

// ScaleOrLow floors the result at low severity. Rules call this after
// their trigger condition has already held: the trigger decides whether a
// finding exists at all, the scaler only decides how severe it is.
func ScaleOrLow(value float64, t Thresholds) entity.Severity {
	sev, _ := Scale(value, t)
	return sev
}

func threshold(v float64) *float64 {
	return &v
}
