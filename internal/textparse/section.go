package textparse

import (
	"strings"
	"unicode"
)

// IsSectionBoundary reports whether a line looks like the heading of a new
// statement section. Sequence extractors stop reading a section when they
// hit one. A boundary line is short and either carries a colon with a
// leading capital, is entirely uppercase, or is an explicit
// "Section"/markdown-style heading.
func IsSectionBoundary(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || len(line) >= 30 {
		return false
	}
	runes := []rune(line)
	startsUpper := unicode.IsUpper(runes[0])

	if strings.Contains(line, ":") && startsUpper {
		return true
	}
	if len(line) > 4 && line == strings.ToUpper(line) && strings.ContainsFunc(line, unicode.IsLetter) {
		return true
	}
	if strings.HasPrefix(line, "Section") || strings.HasPrefix(line, "#") {
		return true
	}
	if startsUpper && strings.HasSuffix(line, ":") {
		return true
	}
	return false
}
