package extract

import (
	"strings"

	"loan-audit/constants"
	"loan-audit/internal/textparse"
)

// extractPrincipal is keyword-scan only; the assembler estimates the value
// when nothing is found.
func (p *Pipeline) extractPrincipal(lines []string) *float64 {
	for _, line := range lines {
		lower := lowerASCII(line)
		for _, kw := range constants.PrincipalKeywords {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			if v := textparse.ParseAmount(line[idx+len(kw):]); v != nil && *v > 0 {
				return v
			}
		}
	}
	return nil
}
