package textparse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// any leading numeric amount, thousands separators allowed
	reAmount = regexp.MustCompile(`[-(]?\s*\$?\s*\d+(?:,\d{3})*(?:\.\d{1,2})?\)?`)
	// currency-shaped only: requires a dollar sign or explicit cents,
	// so bare day/month digits don't match
	reCurrency = regexp.MustCompile(`[-(]?\s*\$\s*\d+(?:,\d{3})*(?:\.\d{1,2})?\)?|[-(]?\d+(?:,\d{3})*\.\d{2}\)?`)
)

// ParseAmount extracts the first numeric amount in s, stripping thousands
// separators. Parenthesized and leading-minus forms are negative. Returns
// nil when no digit sequence matches.
func ParseAmount(s string) *float64 {
	return parseAmountWith(reAmount, s)
}

// ParseCurrency is the stricter variant used where dates and amounts share
// a line: the match must carry a dollar sign or a cents part.
func ParseCurrency(s string) *float64 {
	return parseAmountWith(reCurrency, s)
}

func parseAmountWith(re *regexp.Regexp, s string) *float64 {
	m := re.FindString(s)
	if m == "" {
		return nil
	}
	neg := strings.Contains(m, "-") || (strings.Contains(m, "(") && strings.HasSuffix(m, ")"))
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, m)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	if neg {
		v = -v
	}
	return &v
}
