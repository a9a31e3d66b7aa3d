package policy

// Policy carries every configurable audit threshold. Zero values are never
// used directly; load through Default or Load.
type Policy struct {
	// Excessive forbearance: trigger and severity tiers in whole months.
	ForbearanceMonthsModerate float64 `json:"forbearance_months_moderate"`
	ForbearanceMonthsHigh     float64 `json:"forbearance_months_high"`

	// Unexplained capitalization: severity tiers in event counts, and the
	// window (days after a non-payment period ends) that explains an event.
	CapitalizationExplainDays   float64 `json:"capitalization_explain_days"`
	CapitalizationCountModerate float64 `json:"capitalization_count_moderate"`
	CapitalizationCountHigh     float64 `json:"capitalization_count_high"`

	// Extended non-payment: severity tiers in total unexplained gap-days.
	NonPaymentGapMonths    int     `json:"non_payment_gap_months"`
	NonPaymentDaysModerate float64 `json:"non_payment_days_moderate"`
	NonPaymentDaysHigh     float64 `json:"non_payment_days_high"`

	// High interest rate: trigger threshold and severity tiers on the
	// excess over it.
	InterestRateThreshold  float64 `json:"interest_rate_threshold"`
	InterestExcessModerate float64 `json:"interest_excess_moderate"`
	InterestExcessHigh     float64 `json:"interest_excess_high"`
}

// Default returns the built-in policy. The 6.8 rate threshold reflects the
// historical federal Direct PLUS cap.
func Default() Policy {
	return Policy{
		ForbearanceMonthsModerate:   36,
		ForbearanceMonthsHigh:       60,
		CapitalizationExplainDays:   30,
		CapitalizationCountModerate: 1,
		CapitalizationCountHigh:     3,
		NonPaymentGapMonths:         2,
		NonPaymentDaysModerate:      90,
		NonPaymentDaysHigh:          180,
		InterestRateThreshold:       6.8,
		InterestExcessModerate:      1.5,
		InterestExcessHigh:          3.0,
	}
}
