package extract

import (
	"strings"
	"testing"
	"time"
)

func TestExtractAccountID_KeywordAdjacent(t *testing.T) {
	p := NewPipeline(nil)

	cases := []struct {
		line string
		want string
	}{
		{"Account Number: 9876543210", "9876543210"},
		{"Loan ID AB-12345 active", "AB-12345"},
		{"acct 00042217", "00042217"},
	}
	for _, tc := range cases {
		if got := p.extractAccountID([]string{tc.line}); got != tc.want {
			t.Errorf("extractAccountID(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestExtractAccountID_Placeholder(t *testing.T) {
	p := NewPipeline(nil)
	got := p.extractAccountID([]string{"statement with no identifiers at all"})
	if !strings.HasPrefix(got, "UNKNOWN-") {
		t.Fatalf("expected a synthetic placeholder, got %q", got)
	}
	if len(got) != len("UNKNOWN-")+8 {
		t.Errorf("placeholder %q should carry 8 random characters", got)
	}
}

func TestKeywordExtractors_NonASCIIPrefix(t *testing.T) {
	p := NewPipeline(nil)

	// "İ" grows from two bytes to three under Unicode lowercasing; keyword
	// offsets must still index the original line safely
	prefix := strings.Repeat("İ", 20)

	balance, err := p.extractBalance([]string{prefix + " Current Balance: $45,230.18"})
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 45230.18 {
		t.Errorf("balance = %v, want 45230.18", balance)
	}

	if got := p.extractAccountID([]string{prefix + " Account Number: 9876543210"}); got != "9876543210" {
		t.Errorf("account = %q, want 9876543210", got)
	}

	principal := p.extractPrincipal([]string{prefix + " Original Principal: $38,000.00"})
	if principal == nil || *principal != 38000 {
		t.Errorf("principal = %v, want 38000", principal)
	}
}

func TestExtractInterestRate_KeywordContext(t *testing.T) {
	p := NewPipeline(nil)

	// the rate appears on the line after the mention
	rate, err := p.extractInterestRate([]string{
		"Your current interest rate is shown below",
		"6.55% fixed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 6.55 {
		t.Errorf("rate = %v, want 6.55", rate)
	}
}

func TestExtractInterestRate_BroadFallbackSkipsOutOfBand(t *testing.T) {
	p := NewPipeline(nil)

	rate, err := p.extractInterestRate([]string{
		"Manage your loans 100% online at our website",
		"Fixed at 4.25% for the life of the loan",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 4.25 {
		t.Errorf("rate = %v, want 4.25", rate)
	}
}

func TestExtractInterestRate_Missing(t *testing.T) {
	p := NewPipeline(nil)
	if _, err := p.extractInterestRate([]string{"no percentages anywhere in this text"}); err == nil {
		t.Fatal("expected missing-field error")
	}
}

func TestExtractBalance_SectionWindow(t *testing.T) {
	p := NewPipeline(nil)

	balance, err := p.extractBalance([]string{
		"LOAN SUMMARY",
		"As of 03/15/2021 you owe $45,230.18 on this loan",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 45230.18 {
		t.Errorf("balance = %v", balance)
	}
}

func TestExtractBalance_RejectsOutOfRange(t *testing.T) {
	p := NewPipeline(nil)

	// $50.00 and $750,000.00 are both outside the accepted band
	if _, err := p.extractBalance([]string{
		"Current balance: $50.00",
		"Projected lifetime cost $750,000.00",
	}); err == nil {
		t.Fatal("expected missing-field error when no amount is in range")
	}
}

func TestExtractLoanDates_EarliestFallbackAndEstimatedEnd(t *testing.T) {
	p := NewPipeline(nil)

	start, end, err := p.extractLoanDates([]string{
		"Payment posted 03/15/2021 for $350.00",
		"Payment posted 09/01/2015 for $350.00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2015, time.September, 1)) {
		t.Errorf("start = %v, want the earliest date", start)
	}
	if end == nil || !end.Equal(date(2025, time.September, 1)) {
		t.Errorf("end = %v, want start plus the default term", end)
	}
}

func TestExtractLoanDates_ExplicitEnd(t *testing.T) {
	p := NewPipeline(nil)

	start, end, err := p.extractLoanDates([]string{
		"Origination Date: 09/01/2015",
		"Maturity Date: 09/01/2030",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2015, time.September, 1)) {
		t.Errorf("start = %v", start)
	}
	if end == nil || !end.Equal(date(2030, time.September, 1)) {
		t.Errorf("end = %v, want the explicit maturity date", end)
	}
}

func TestExtractServicer_KnownBeatsGeneric(t *testing.T) {
	p := NewPipeline(nil)

	got, err := p.extractServicer([]string{
		"Acme Financial statement services",
		"Navient - your federal loan servicer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Navient" {
		t.Errorf("servicer = %q, want the known-servicer table to win", got)
	}
}

func TestExtractServicer_GenericCompanyName(t *testing.T) {
	p := NewPipeline(nil)

	got, err := p.extractServicer([]string{"Hilltop Lending", "Account statement enclosed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hilltop Lending" {
		t.Errorf("servicer = %q", got)
	}
}
