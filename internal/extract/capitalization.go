package extract

import (
	"regexp"
	"sort"
	"time"

	"loan-audit/internal/textparse"
)

const (
	capMentionPad       = 100 // chars around a capitalization mention
	capAmountLookbehind = 50  // chars before a capitalized-amount mention
	capDedupTolerance   = 24 * time.Hour
)

var (
	reCapMention  = regexp.MustCompile(`(?i)capitaliz\w*`)
	reCapExplicit = regexp.MustCompile(`(?i)interest\s+(?:was\s+)?capitalized\s+on\s+(` + textparse.DatePattern + `)`)
	reCapAmount   = regexp.MustCompile(`(?i)capitaliz\w*[^.\n]{0,40}?\$\s*\d`)
)

// extractCapitalizationDates collects candidate dates from a window around
// every capitalization mention, from explicit "interest capitalized on
// <date>" phrases, and from the text preceding capitalized-amount
// mentions. Candidates are merged, deduplicated within a day, and sorted.
func (p *Pipeline) extractCapitalizationDates(text string) []time.Time {
	var candidates []time.Time

	for _, loc := range reCapMention.FindAllStringIndex(text, -1) {
		candidates = append(candidates, p.scanDates(surrounding(text, loc[0], loc[1], capMentionPad))...)
	}

	for _, m := range reCapExplicit.FindAllStringSubmatch(text, -1) {
		if t, ok := p.Dates.Parse(m[1]); ok && p.inWindow(t) {
			candidates = append(candidates, t)
		}
	}

	for _, loc := range reCapAmount.FindAllStringIndex(text, -1) {
		lo := loc[0] - capAmountLookbehind
		if lo < 0 {
			lo = 0
		}
		candidates = append(candidates, p.scanDates(text[lo:loc[0]])...)
	}

	var kept []time.Time
	for _, cand := range candidates {
		dup := false
		for _, k := range kept {
			if absDuration(cand.Sub(k)) <= capDedupTolerance {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, cand)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Before(kept[j]) })
	return kept
}
