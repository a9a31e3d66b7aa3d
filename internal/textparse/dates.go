package textparse

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Layouts tried in order by Parse. First successful parse wins.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"1-2-2006",
	"2006-1-2",
	"2006/1/2",
	"January 2, 2006",
	"January 2 2006",
	"January 2006",
}

// canonical month names keyed by their first three letters.
var monthNames = map[string]string{
	"jan": "January", "feb": "February", "mar": "March", "apr": "April",
	"may": "May", "jun": "June", "jul": "July", "aug": "August",
	"sep": "September", "oct": "October", "nov": "November", "dec": "December",
}

// DatePattern matches any date shape the parser understands. Sequence
// extractors embed it in their own expressions.
const DatePattern = `(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{1,2}-\d{1,2}|[A-Za-z]{3,9}\.?\s+\d{1,2},?\s+\d{4}|[A-Za-z]{3,9}\.?\s+\d{4})`

// DateParser bundles the scan expressions compiled once at pipeline
// startup. Read-only after construction, safe for concurrent use.
type DateParser struct {
	scanRes []*regexp.Regexp
}

func NewDateParser() *DateParser {
	return &DateParser{
		scanRes: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
			regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
			regexp.MustCompile(`(?i)\b[a-z]{3,9}\.?\s+\d{1,2},?\s+\d{4}\b`),
			regexp.MustCompile(`(?i)\b[a-z]{3,9}\.?\s+\d{4}\b`),
		},
	}
}

// Parse attempts the fixed layout list against a trimmed string and
// returns the first successful parse.
func (p *DateParser) Parse(s string) (time.Time, bool) {
	s = strings.Trim(strings.TrimSpace(s), ".,;")
	if s == "" {
		return time.Time{}, false
	}
	s = canonicalizeMonths(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ScanText runs every date-shaped expression across arbitrary text and
// parses each match. Results follow textual order and are not deduplicated
// at this layer.
func (p *DateParser) ScanText(text string) []time.Time {
	type hit struct {
		pos int
		t   time.Time
	}
	var hits []hit
	for _, re := range p.scanRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if t, ok := p.Parse(text[loc[0]:loc[1]]); ok {
				hits = append(hits, hit{pos: loc[0], t: t})
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]time.Time, len(hits))
	for i, h := range hits {
		out[i] = h.t
	}
	return out
}

// canonicalizeMonths rewrites month words ("SEPT.", "feb") to the
// canonical full name so time.Parse layouts match regardless of casing or
// abbreviation.
func canonicalizeMonths(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		word := strings.ToLower(strings.Trim(f, "."))
		if len(word) < 3 {
			continue
		}
		if full, ok := monthNames[word[:3]]; ok && strings.HasPrefix(strings.ToLower(full), word) {
			fields[i] = full
		}
	}
	return strings.Join(fields, " ")
}
