package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"loan-audit/internal/entity"
)

func TestWriteReportXLSX(t *testing.T) {
	principal := 38000.0
	rec := &entity.LoanRecord{
		ServicerName:      "Navient",
		AccountNumber:     "9876543210",
		InterestRate:      7.9,
		CurrentBalance:    45230.18,
		OriginalPrincipal: &principal,
		StartDate:         time.Date(2015, time.September, 1, 0, 0, 0, 0, time.UTC),
	}
	findings := []entity.AuditFinding{
		{
			IssueType:   entity.IssueHighInterestRate,
			RuleCode:    "INTEREST_HIGH_001",
			Title:       "Abnormally High Interest Rate",
			Description: "rate exceeds cap",
			Severity:    entity.SeverityModerate,
		},
	}

	data, err := NewService(nil).WriteReportXLSX(rec, findings)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Findings" || sheets[1] != "Loan Summary" {
		t.Fatalf("sheets = %v", sheets)
	}

	code, err := f.GetCellValue("Findings", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if code != "INTEREST_HIGH_001" {
		t.Errorf("A2 = %q, want the rule code", code)
	}
	sev, _ := f.GetCellValue("Findings", "C2")
	if sev != "moderate" {
		t.Errorf("C2 = %q, want moderate", sev)
	}

	servicer, _ := f.GetCellValue("Loan Summary", "B1")
	if servicer != "Navient" {
		t.Errorf("summary servicer = %q", servicer)
	}
}
