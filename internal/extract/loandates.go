package extract

import (
	"strings"
	"time"

	"loan-audit/constants"
	"loan-audit/internal/common"
)

// estimated term applied when no explicit end date is on the statement
const defaultTermYears = 10

// extractLoanDates runs the start-date and end-date keyword scans
// independently. When no explicit start is found it falls back to the
// earliest in-window date anywhere in the document; a missing end date is
// estimated as start + 10 years.
func (p *Pipeline) extractLoanDates(lines []string) (time.Time, *time.Time, error) {
	start := p.keywordDate(lines, constants.StartDateKeywords)
	end := p.keywordDate(lines, constants.EndDateKeywords)

	if start == nil {
		start = p.earliestDate(lines)
	}
	if start == nil {
		return time.Time{}, nil, common.NewMissingRequiredField("Loan Start Date")
	}

	if end == nil {
		est := start.AddDate(defaultTermYears, 0, 0)
		end = &est
	}
	return *start, end, nil
}

func (p *Pipeline) keywordDate(lines []string, keywords []string) *time.Time {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if dates := p.scanDates(line); len(dates) > 0 {
				return &dates[0]
			}
		}
	}
	return nil
}

func (p *Pipeline) earliestDate(lines []string) *time.Time {
	var earliest *time.Time
	for _, line := range lines {
		for _, d := range p.scanDates(line) {
			if earliest == nil || d.Before(*earliest) {
				d := d
				earliest = &d
			}
		}
	}
	return earliest
}
