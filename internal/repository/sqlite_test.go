package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"loan-audit/internal/entity"
)

func openTestStore(t *testing.T) *SQLiteReportStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "reports.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndGetReport(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := &entity.LoanRecord{
		ServicerName:   "Navient",
		AccountNumber:  "9876543210",
		InterestRate:   7.9,
		CurrentBalance: 45230.18,
		StartDate:      time.Date(2015, time.September, 1, 0, 0, 0, 0, time.UTC),
	}
	findings := []entity.AuditFinding{
		{
			IssueType:       entity.IssueHighInterestRate,
			RuleCode:        "INTEREST_HIGH_001",
			Title:           "Abnormally High Interest Rate",
			Description:     "rate exceeds cap",
			SuggestedAction: "verify against promissory note",
			Severity:        entity.SeverityModerate,
			AffectedDates:   []time.Time{time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	id, err := store.SaveReport(ctx, rec, findings)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rep, err := store.GetReport(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rep.AccountNumber != "9876543210" || rep.ServicerName != "Navient" {
		t.Errorf("report header = %+v", rep)
	}
	if len(rep.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(rep.Findings))
	}
	if !rep.Findings[0].Equal(findings[0]) {
		t.Errorf("finding round-trip mismatch: %+v", rep.Findings[0])
	}
	if len(rep.Findings[0].AffectedDates) != 1 {
		t.Errorf("affected dates = %v", rep.Findings[0].AffectedDates)
	}
}

func TestListReports_ByAccount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	recA := &entity.LoanRecord{ServicerName: "Navient", AccountNumber: "111", InterestRate: 5}
	recB := &entity.LoanRecord{ServicerName: "Nelnet", AccountNumber: "222", InterestRate: 5}

	if _, err := store.SaveReport(ctx, recA, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveReport(ctx, recA, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveReport(ctx, recB, nil); err != nil {
		t.Fatal(err)
	}

	reports, err := store.ListReports(ctx, "111")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports for account 111, got %d", len(reports))
	}
	for _, rep := range reports {
		if rep.AccountNumber != "111" {
			t.Errorf("unexpected account %q in listing", rep.AccountNumber)
		}
	}
}
