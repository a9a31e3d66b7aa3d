package extract

import (
	"regexp"
	"strings"

	"loan-audit/constants"
	"loan-audit/internal/common"
)

var (
	// "Company Name Servicing", "Acme Financial", etc.
	reCompanyName = regexp.MustCompile(`\b[A-Z][A-Za-z&'.-]*(?:\s+[A-Z][A-Za-z&'.-]*)*\s+(?:Servicing|Financial|Loan Services|Lending|Education|Bank|Servicer)\b`)
	reCapitalized = regexp.MustCompile(`\b[A-Z][A-Za-z]{2,}(?:\s+[A-Z][A-Za-z]{2,})*\b`)
)

// extractServicer resolves the servicer name with three strategies in
// order: the known-servicer table within the header window, a generic
// company-name pattern in the header, then a looser full-document scan of
// lines that mention loans or servicing.
func (p *Pipeline) extractServicer(lines []string) (string, error) {
	header := lines
	if len(header) > headerWindowLines {
		header = header[:headerWindowLines]
	}

	for _, line := range header {
		if s := constants.MatchKnownServicer(line); s != "" {
			return s, nil
		}
	}

	for _, line := range header {
		if m := reCompanyName.FindString(line); m != "" {
			return m, nil
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "loan") && !strings.Contains(lower, "servic") {
			continue
		}
		for _, tok := range reCapitalized.FindAllString(line, -1) {
			// skip the generic words themselves
			lt := strings.ToLower(tok)
			if lt == "loan" || lt == "loans" || lt == "servicer" || lt == "servicing" {
				continue
			}
			return tok, nil
		}
	}

	return "", common.NewMissingRequiredField("Loan Servicer")
}
