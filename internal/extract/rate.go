package extract

import (
	"strings"

	"loan-audit/constants"
	"loan-audit/internal/common"
	"loan-audit/internal/textparse"
)

// extractInterestRate scans keyword lines first, then keyword context
// (the mentioning line plus its successor), then falls back to the first
// plausible percent anywhere. A keyword-adjacent rate outside [0, 20] is a
// hard format error rather than a miss.
func (p *Pipeline) extractInterestRate(lines []string) (float64, error) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range constants.InterestRateKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if v := textparse.FindPercent(line); v != nil {
				if *v < rateMin || *v > rateMax {
					return 0, common.NewInvalidFieldFormat("interestRate")
				}
				return *v, nil
			}
		}
	}

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "interest") {
			continue
		}
		context := line
		if i+1 < len(lines) {
			context += " " + lines[i+1]
		}
		if v := textparse.FindPercent(context); v != nil {
			if *v < rateMin || *v > rateMax {
				return 0, common.NewInvalidFieldFormat("interestRate")
			}
			return *v, nil
		}
	}

	// broad fallback uses the banded helper so stray out-of-band percents
	// (e.g. "100% online") are skipped, not fatal
	for _, line := range lines {
		if v := textparse.ParsePercent(line); v != nil {
			return *v, nil
		}
	}

	return 0, common.NewMissingRequiredField("Interest Rate")
}
