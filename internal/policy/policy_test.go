package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != Default() {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestLoad_OverrideOnTopOfDefaults(t *testing.T) {
	path := writePolicy(t, `{"interest_rate_threshold": 5.5, "forbearance_months_moderate": 24}`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.InterestRateThreshold != 5.5 {
		t.Errorf("threshold = %v, want 5.5", p.InterestRateThreshold)
	}
	if p.ForbearanceMonthsModerate != 24 {
		t.Errorf("forbearance moderate = %v, want 24", p.ForbearanceMonthsModerate)
	}
	// untouched keys keep their defaults
	if p.NonPaymentDaysHigh != 180 {
		t.Errorf("non-payment high = %v, want default 180", p.NonPaymentDaysHigh)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writePolicy(t, `{"intrest_rate_threshold": 5.5}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected schema violation for a misspelled key")
	}
}

func TestLoad_RejectsWrongTypes(t *testing.T) {
	path := writePolicy(t, `{"non_payment_gap_months": 1.5}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected schema violation for a fractional month count")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
