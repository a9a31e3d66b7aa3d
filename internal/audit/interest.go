package audit

import (
	"fmt"

	"loan-audit/internal/entity"
	"loan-audit/internal/policy"
)

var interestDocs = "https://studentaid.gov/understand-aid/types/loans/interest-rates"

// HighInterestRateRule flags rates above the policy threshold, which
// defaults to the historical 6.8% federal cap. Severity scales with how
// far the rate exceeds it.
type HighInterestRateRule struct {
	Policy policy.Policy
}

func (r HighInterestRateRule) RuleCode() string { return "INTEREST_HIGH_001" }
func (r HighInterestRateRule) Title() string    { return "Abnormally High Interest Rate" }
func (r HighInterestRateRule) DocsRef() string  { return interestDocs }

func (r HighInterestRateRule) Evaluate(rec *entity.LoanRecord) *entity.AuditFinding {
	if rec.InterestRate <= r.Policy.InterestRateThreshold {
		return nil
	}
	excess := rec.InterestRate - r.Policy.InterestRateThreshold

	severity := ScaleOrLow(excess, Thresholds{
		Moderate: threshold(r.Policy.InterestExcessModerate),
		High:     threshold(r.Policy.InterestExcessHigh),
	})

	return &entity.AuditFinding{
		IssueType: entity.IssueHighInterestRate,
		RuleCode:  r.RuleCode(),
		Title:     r.Title(),
		Description: fmt.Sprintf(
			"The interest rate of %.2f%% exceeds the %.2f%% reference cap by %.2f points.",
			rec.InterestRate, r.Policy.InterestRateThreshold, excess),
		SuggestedAction: "Verify the rate against your promissory note and ask whether a " +
			"rate-reduction or consolidation option applies.",
		Severity: severity,
		DocsRef:  &interestDocs,
	}
}
