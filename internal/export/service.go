package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"loan-audit/internal/entity"
)

// Service produces XLSX bytes for audit reports. It is a presentation
// collaborator: the core pipeline never depends on it.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteReportXLSX returns a workbook with a findings sheet and a summary
// sheet describing the extracted record.
func (s *Service) WriteReportXLSX(rec *entity.LoanRecord, findings []entity.AuditFinding) ([]byte, error) {
	f := excelize.NewFile()

	const findingsSheet = "Findings"
	if err := renameDefaultSheet(f, findingsSheet); err != nil {
		return nil, err
	}

	headers := []string{"Rule Code", "Issue", "Severity", "Title", "Description", "Suggested Action", "Affected Dates"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(findingsSheet, cell, h)
	}

	row := 2
	for _, fd := range findings {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(findingsSheet, cell, v)
		}
		write(1, fd.RuleCode)
		write(2, string(fd.IssueType))
		write(3, fd.Severity.String())
		write(4, fd.Title)
		write(5, fd.Description)
		write(6, fd.SuggestedAction)
		write(7, formatDates(fd.AffectedDates))
		row++
	}

	const summarySheet = "Loan Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	summary := [][2]any{
		{"Servicer", rec.ServicerName},
		{"Account", rec.AccountNumber},
		{"Interest Rate (%)", rec.InterestRate},
		{"Current Balance", rec.CurrentBalance},
		{"Loan Start", rec.StartDate.Format("2006-01-02")},
		{"Payments Recorded", len(rec.Payments)},
		{"Non-Payment Periods", len(rec.NonPaymentPeriods)},
		{"Capitalization Events", len(rec.CapitalizationDates)},
	}
	if rec.OriginalPrincipal != nil {
		summary = append(summary, [2]any{"Original Principal", *rec.OriginalPrincipal})
	}
	if rec.EndDate != nil {
		summary = append(summary, [2]any{"Loan End", rec.EndDate.Format("2006-01-02")})
	}
	for i, kv := range summary {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(summarySheet, keyCell, kv[0])
		_ = f.SetCellValue(summarySheet, valCell, kv[1])
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.ok", "findings", len(findings), "bytes", buf.Len())
	return buf.Bytes(), nil
}

func renameDefaultSheet(f *excelize.File, name string) error {
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return err
	}
	return nil
}

func formatDates(dates []time.Time) string {
	out := ""
	for i, d := range dates {
		if i > 0 {
			out += ", "
		}
		out += d.Format("2006-01-02")
	}
	return out
}
