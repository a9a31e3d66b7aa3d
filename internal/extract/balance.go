package extract

import (
	"strings"

	"loan-audit/constants"
	"loan-audit/internal/common"
	"loan-audit/internal/textparse"
)

func acceptableBalance(v float64) bool {
	return v > minAcceptedBalance && v < maxAcceptedBalance
}

// extractBalance scans keyword lines, then a window of lines following a
// details/summary heading, then any currency-shaped amount in the
// document. Only values inside (100, 500000) are accepted.
func (p *Pipeline) extractBalance(lines []string) (float64, error) {
	for _, line := range lines {
		lower := lowerASCII(line)
		for _, kw := range constants.BalanceKeywords {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			if v := textparse.ParseAmount(line[idx+len(kw):]); v != nil && acceptableBalance(*v) {
				return *v, nil
			}
		}
	}

	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range constants.BalanceSectionKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			end := i + 1 + balanceWindowLines
			if end > len(lines) {
				end = len(lines)
			}
			for _, windowLine := range lines[i+1 : end] {
				if v := textparse.ParseCurrency(windowLine); v != nil && acceptableBalance(*v) {
					return *v, nil
				}
			}
		}
	}

	for _, line := range lines {
		if v := textparse.ParseCurrency(line); v != nil && acceptableBalance(*v) {
			return *v, nil
		}
	}

	return 0, common.NewMissingRequiredField("Current Balance")
}
