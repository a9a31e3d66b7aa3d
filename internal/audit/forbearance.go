package audit

import (
	"fmt"
	"time"

	"loan-audit/internal/entity"
	"loan-audit/internal/policy"
)

var forbearanceDocs = "https://studentaid.gov/manage-loans/lower-payments/get-temporary-relief"

// ExcessiveForbearanceRule flags loans that spent more months in
// forbearance than the policy guideline. Interest keeps accruing during
// forbearance, so steering a borrower into years of it is a known
// servicing failure mode.
type ExcessiveForbearanceRule struct {
	Policy policy.Policy
}

func (r ExcessiveForbearanceRule) RuleCode() string { return "FORBEAR_EXCESS_001" }
func (r ExcessiveForbearanceRule) Title() string    { return "Excessive Forbearance" }
func (r ExcessiveForbearanceRule) DocsRef() string  { return forbearanceDocs }

func (r ExcessiveForbearanceRule) Evaluate(rec *entity.LoanRecord) *entity.AuditFinding {
	months := rec.TotalForbearanceMonths()
	if float64(months) <= r.Policy.ForbearanceMonthsModerate {
		return nil
	}

	severity := ScaleOrLow(float64(months), Thresholds{
		Moderate: threshold(r.Policy.ForbearanceMonthsModerate),
		High:     threshold(r.Policy.ForbearanceMonthsHigh),
	})

	return &entity.AuditFinding{
		IssueType: entity.IssueExcessiveForbearance,
		RuleCode:  r.RuleCode(),
		Title:     r.Title(),
		Description: fmt.Sprintf(
			"This loan spent %d total months in forbearance, above the %.0f-month guideline.",
			months, r.Policy.ForbearanceMonthsModerate),
		SuggestedAction: "Request your complete forbearance history and ask the servicer why " +
			"income-driven repayment was not offered instead.",
		Severity:      severity,
		AffectedDates: forbearanceDates(rec),
		DocsRef:       &forbearanceDocs,
	}
}

// forbearanceDates lists every forbearance start/end pair in order.
func forbearanceDates(rec *entity.LoanRecord) []time.Time {
	var dates []time.Time
	for _, p := range rec.NonPaymentPeriods {
		if p.Kind == entity.KindForbearance {
			dates = append(dates, p.Start, p.End)
		}
	}
	return dates
}
