package textparse

import (
	"regexp"
	"strconv"
)

// Plausible band for a student-loan interest rate. Values outside are
// treated as non-matches by ParsePercent; field extractors may apply their
// own bounds via FindPercent.
const (
	PercentMin = 0.0
	PercentMax = 20.0
)

var rePercent = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// ParsePercent extracts a decimal number followed by '%' and accepts it
// only within [PercentMin, PercentMax].
func ParsePercent(s string) *float64 {
	v := FindPercent(s)
	if v == nil || *v < PercentMin || *v > PercentMax {
		return nil
	}
	return v
}

// FindPercent extracts a percent-shaped value with no sanity band applied.
func FindPercent(s string) *float64 {
	m := rePercent.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}
