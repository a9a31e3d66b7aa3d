package entity

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalForbearanceMonths(t *testing.T) {
	rec := &LoanRecord{
		NonPaymentPeriods: []NonPaymentPeriod{
			{Kind: KindForbearance, Start: date(2015, time.January, 15), End: date(2016, time.July, 15)},
			{Kind: KindDeferment, Start: date(2017, time.January, 1), End: date(2019, time.January, 1)},
			{Kind: KindForbearance, Start: date(2020, time.March, 1), End: date(2020, time.September, 1)},
		},
	}
	// 18 + 6, the 24 deferment months excluded
	if got := rec.TotalForbearanceMonths(); got != 24 {
		t.Errorf("TotalForbearanceMonths() = %d, want 24", got)
	}
}

func TestTotalPaymentAmount_SignedSum(t *testing.T) {
	rec := &LoanRecord{
		Payments: []PaymentRecord{
			{Date: date(2020, time.January, 15), Amount: 350, Type: PaymentRegular},
			{Date: date(2020, time.February, 15), Amount: 350, Type: PaymentRegular},
			{Date: date(2020, time.February, 20), Amount: -100, Type: PaymentRegular},
		},
	}
	if got := rec.TotalPaymentAmount(); got != 600 {
		t.Errorf("TotalPaymentAmount() = %v, want 600", got)
	}
}

func TestNonPaymentPeriod_Months(t *testing.T) {
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{date(2019, time.April, 10), date(2019, time.June, 5), 2},
		{date(2015, time.January, 15), date(2018, time.May, 15), 40},
		{date(2020, time.March, 1), date(2020, time.March, 20), 0},
	}
	for _, tc := range cases {
		p := NonPaymentPeriod{Start: tc.start, End: tc.end}
		if got := p.Months(); got != tc.want {
			t.Errorf("Months(%v..%v) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestNonPaymentPeriod_Overlaps(t *testing.T) {
	p := NonPaymentPeriod{Start: date(2020, time.February, 1), End: date(2020, time.April, 30)}

	if !p.Overlaps(date(2020, time.January, 15), date(2020, time.May, 15)) {
		t.Error("expected overlap with an enclosing interval")
	}
	if !p.Overlaps(date(2020, time.April, 1), date(2020, time.June, 1)) {
		t.Error("expected overlap with a partial interval")
	}
	if p.Overlaps(date(2020, time.May, 1), date(2020, time.June, 1)) {
		t.Error("expected no overlap after the period")
	}
	if p.Overlaps(date(2019, time.December, 1), date(2020, time.February, 1)) {
		t.Error("interval ending exactly at the period start does not overlap")
	}
}

func TestAuditFinding_EqualIgnoresAffectedDates(t *testing.T) {
	a := AuditFinding{
		IssueType:   IssueHighInterestRate,
		RuleCode:    "INTEREST_HIGH_001",
		Title:       "Abnormally High Interest Rate",
		Description: "rate exceeds cap",
		Severity:    SeverityModerate,
		AffectedDates: []time.Time{
			date(2020, time.January, 1),
		},
	}
	b := a
	b.AffectedDates = nil
	if !a.Equal(b) {
		t.Error("findings differing only in affected dates must compare equal")
	}

	b.Severity = SeverityHigh
	if a.Equal(b) {
		t.Error("findings with different severities must not compare equal")
	}
}

func TestSeverity_String(t *testing.T) {
	cases := map[Severity]string{
		SeverityLow:      "low",
		SeverityModerate: "moderate",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}
