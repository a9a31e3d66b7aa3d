package audit

import (
	"fmt"
	"time"

	"loan-audit/internal/entity"
	"loan-audit/internal/policy"
)

var capitalizationDocs = "https://studentaid.gov/understand-aid/types/loans/interest"

// UnexplainedCapitalizationRule flags capitalization events with no
// nearby non-payment period to justify them. Capitalization is expected
// when a forbearance or deferment ends; anywhere else it deserves a
// written explanation from the servicer.
type UnexplainedCapitalizationRule struct {
	Policy policy.Policy
}

func (r UnexplainedCapitalizationRule) RuleCode() string { return "CAP_UNEXP_001" }
func (r UnexplainedCapitalizationRule) Title() string    { return "Unexplained Interest Capitalization" }
func (r UnexplainedCapitalizationRule) DocsRef() string  { return capitalizationDocs }

func (r UnexplainedCapitalizationRule) Evaluate(rec *entity.LoanRecord) *entity.AuditFinding {
	window := time.Duration(r.Policy.CapitalizationExplainDays) * 24 * time.Hour

	var unexplained []time.Time
	for _, capDate := range rec.CapitalizationDates {
		if !r.explained(rec, capDate, window) {
			unexplained = append(unexplained, capDate)
		}
	}
	if len(unexplained) == 0 {
		return nil
	}

	severity := ScaleOrLow(float64(len(unexplained)), Thresholds{
		Moderate: threshold(r.Policy.CapitalizationCountModerate),
		High:     threshold(r.Policy.CapitalizationCountHigh),
	})

	return &entity.AuditFinding{
		IssueType: entity.IssueUnexplainedCapitalization,
		RuleCode:  r.RuleCode(),
		Title:     r.Title(),
		Description: fmt.Sprintf(
			"%d interest capitalization event(s) do not line up with the end of any recorded forbearance or deferment.",
			len(unexplained)),
		SuggestedAction: "Ask the servicer for the written justification of each capitalization " +
			"event and a recalculation if one cannot be provided.",
		Severity:      severity,
		AffectedDates: unexplained,
		DocsRef:       &capitalizationDocs,
	}
}

// explained reports whether the capitalization date falls within the
// policy window of the end of any non-payment period.
func (r UnexplainedCapitalizationRule) explained(rec *entity.LoanRecord, capDate time.Time, window time.Duration) bool {
	for _, p := range rec.NonPaymentPeriods {
		delta := capDate.Sub(p.End)
		if delta < 0 {
			delta = -delta
		}
		if delta <= window {
			return true
		}
	}
	return false
}
