package entity

import (
	"time"
)

// LoanRecord is the structured result of extracting one statement. It is
// assembled once by the extraction pipeline and treated as immutable; the
// audit engine only ever reads it.
type LoanRecord struct {
	ServicerName        string             `json:"servicer_name"`
	AccountNumber       string             `json:"account_number"`
	InterestRate        float64            `json:"interest_rate"`
	CurrentBalance      float64            `json:"current_balance"`
	OriginalPrincipal   *float64           `json:"original_principal,omitempty"`
	StartDate           time.Time          `json:"start_date"`
	EndDate             *time.Time         `json:"end_date,omitempty"`
	NonPaymentPeriods   []NonPaymentPeriod `json:"non_payment_periods"`
	Payments            []PaymentRecord    `json:"payments"`
	CapitalizationDates []time.Time        `json:"capitalization_dates"`
}

// TotalForbearanceMonths sums whole calendar months across forbearance
// periods only; deferments are counted separately by callers that care.
func (r *LoanRecord) TotalForbearanceMonths() int {
	total := 0
	for _, p := range r.NonPaymentPeriods {
		if p.Kind == KindForbearance {
			total += p.Months()
		}
	}
	return total
}

// TotalPaymentAmount is the signed sum of all payment amounts. Refunds
// (negative amounts) reduce the total.
func (r *LoanRecord) TotalPaymentAmount() float64 {
	var sum float64
	for _, p := range r.Payments {
		sum += p.Amount
	}
	return sum
}
