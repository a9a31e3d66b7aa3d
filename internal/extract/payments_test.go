package extract

import (
	"testing"
	"time"

	"loan-audit/internal/entity"
)

func TestDedupPayments(t *testing.T) {
	in := []entity.PaymentRecord{
		{Date: date(2020, time.January, 15), Amount: 350, Type: entity.PaymentRegular},
		{Date: date(2020, time.January, 15), Amount: 350, Type: entity.PaymentRegular},
		{Date: date(2020, time.January, 16), Amount: 350.005, Type: entity.PaymentRegular},
		{Date: date(2020, time.January, 15), Amount: 400, Type: entity.PaymentRegular},
		{Date: date(2020, time.February, 15), Amount: 350, Type: entity.PaymentRegular},
	}

	kept := DedupPayments(in)
	if len(kept) != 3 {
		t.Fatalf("expected 3 payments after dedup, got %d: %v", len(kept), kept)
	}

	again := DedupPayments(kept)
	if len(again) != len(kept) {
		t.Errorf("dedup is not idempotent: %d then %d", len(kept), len(again))
	}
}

func TestClassifyPayment(t *testing.T) {
	cases := []struct {
		line string
		want entity.PaymentType
	}{
		{"01/15/2020 Payment Received $350.00", entity.PaymentRegular},
		{"01/15/2020 Extra Principal Payment $500.00", entity.PaymentExtraPrincipal},
		{"01/15/2020 Interest Only Payment $120.00", entity.PaymentInterestOnly},
		{"01/15/2020 Late Fee Assessed $25.00", entity.PaymentFee},
	}
	for _, tc := range cases {
		if got := classifyPayment(tc.line); got != tc.want {
			t.Errorf("classifyPayment(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestPaymentSection_FallsBackToWholeDocument(t *testing.T) {
	p := NewPipeline(nil)
	lines := []string{
		"Navient statement for account 9876543210",
		"01/15/2020 Payment Received $350.00",
		"02/15/2020 Payment Received $350.00",
	}
	payments := p.extractPayments(lines)
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments without a section heading, got %d", len(payments))
	}
	if !payments[0].Date.Before(payments[1].Date) {
		t.Error("payments must be sorted ascending by date")
	}
}
