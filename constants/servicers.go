package constants

import (
	"strings"
)

// KnownServicers are exact display names of federal and private student-loan
// servicers we recognize. Matching is case-insensitive substring within the
// statement header.
var KnownServicers = []string{
	"Nelnet",
	"Navient",
	"MOHELA",
	"Aidvantage",
	"Great Lakes",
	"FedLoan Servicing",
	"Edfinancial",
	"ECSI",
	"OSLA Servicing",
	"Sallie Mae",
	"Earnest",
	"SoFi",
	"CommonBond",
	"Discover Student Loans",
	"Wells Fargo Education Financial Services",
}

// MatchKnownServicer returns the canonical servicer name contained in the
// line, or "" when none matches.
func MatchKnownServicer(line string) string {
	lower := strings.ToLower(line)
	for _, s := range KnownServicers {
		if strings.Contains(lower, strings.ToLower(s)) {
			return s
		}
	}
	return ""
}
