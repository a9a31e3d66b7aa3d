package audit

import (
	"fmt"
	"time"

	"loan-audit/internal/entity"
	"loan-audit/internal/policy"
)

var nonPaymentDocs = "https://studentaid.gov/manage-loans/repayment"

// ExtendedNonPaymentRule flags long gaps between consecutive payments
// that no recorded forbearance or deferment accounts for. Such gaps often
// indicate lost paperwork or a pause the servicer never documented.
type ExtendedNonPaymentRule struct {
	Policy policy.Policy
}

func (r ExtendedNonPaymentRule) RuleCode() string { return "NONPAY_001" }
func (r ExtendedNonPaymentRule) Title() string    { return "Extended Non-Payment Gap" }
func (r ExtendedNonPaymentRule) DocsRef() string  { return nonPaymentDocs }

func (r ExtendedNonPaymentRule) Evaluate(rec *entity.LoanRecord) *entity.AuditFinding {
	var (
		totalGapDays float64
		affected     []time.Time
		gaps         int
	)

	for i := 1; i < len(rec.Payments); i++ {
		prev, cur := rec.Payments[i-1], rec.Payments[i]
		if monthsBetween(prev.Date, cur.Date) < r.Policy.NonPaymentGapMonths {
			continue
		}
		if coveredByPeriod(rec, prev.Date, cur.Date) {
			continue
		}
		gaps++
		totalGapDays += cur.Date.Sub(prev.Date).Hours() / 24
		affected = append(affected, prev.Date, cur.Date)
	}
	if gaps == 0 {
		return nil
	}

	// Once any unexplained gap exists a finding is always emitted; the
	// scaler floors at low severity below the moderate threshold.
	severity := ScaleOrLow(totalGapDays, Thresholds{
		Moderate: threshold(r.Policy.NonPaymentDaysModerate),
		High:     threshold(r.Policy.NonPaymentDaysHigh),
	})

	return &entity.AuditFinding{
		IssueType: entity.IssueExtendedNonPayment,
		RuleCode:  r.RuleCode(),
		Title:     r.Title(),
		Description: fmt.Sprintf(
			"%d payment gap(s) totaling %.0f days have no recorded forbearance or deferment covering them.",
			gaps, totalGapDays),
		SuggestedAction: "Request the account's full transaction and status history to confirm " +
			"how these gaps were classified.",
		Severity:      severity,
		AffectedDates: affected,
		DocsRef:       &nonPaymentDocs,
	}
}

func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months < 0 {
		return 0
	}
	return months
}

func coveredByPeriod(rec *entity.LoanRecord, from, to time.Time) bool {
	for _, p := range rec.NonPaymentPeriods {
		if p.Overlaps(from, to) {
			return true
		}
	}
	return false
}
