package extract

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"loan-audit/internal/entity"
	"loan-audit/internal/normalize"
	"loan-audit/internal/textparse"
)

const (
	// maximum span accepted when pairing loose dates inside a section
	maxSectionPairSpan = 60 * 24 * time.Hour
	// start/end tolerance when merging periods found by both strategies
	periodDedupTolerance = 3 * 24 * time.Hour
	// how many lines a keyword-opened section may run before it is closed
	maxSectionLines = 12
)

var (
	reNonPayForward = regexp.MustCompile(`(?is)(forbearance|deferment).{0,120}?(` + textparse.DatePattern + `)\s*(?:to|through|until|[-–])\s*(` + textparse.DatePattern + `)`)
	reNonPayReverse = regexp.MustCompile(`(?is)(` + textparse.DatePattern + `)\s*(?:to|through|until|[-–])\s*(` + textparse.DatePattern + `).{0,120}?(forbearance|deferment)`)

	reasonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:due to|because of|reason[:\s])\s*([a-z][a-z /-]{2,40})`),
		regexp.MustCompile(`(?i)(economic hardship|unemployment|medical|military service|in[- ]school|financial difficulty|natural disaster)`),
	}
)

// extractNonPaymentPeriods merges two complementary strategies: explicit
// "forbearance <date> to <date>" patterns over the whole document, and a
// section scan that pairs loose dates found under a forbearance/deferment
// heading. Results are deduplicated and sorted by start date.
func (p *Pipeline) extractNonPaymentPeriods(doc *normalize.Document) []entity.NonPaymentPeriod {
	text := doc.Text()

	var merged []entity.NonPaymentPeriod
	for _, period := range p.periodsFromPatterns(text) {
		merged = mergePeriod(merged, period)
	}
	for _, period := range p.periodsFromSections(doc.Lines()) {
		merged = mergePeriod(merged, period)
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Start.Before(merged[j].Start) })
	return merged
}

// periodsFromPatterns matches "<kind> ... <date> to <date>" in either
// order across the full document text.
func (p *Pipeline) periodsFromPatterns(text string) []entity.NonPaymentPeriod {
	var out []entity.NonPaymentPeriod

	collect := func(re *regexp.Regexp, kindGroup, startGroup, endGroup int) {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			kind := kindFromKeyword(group(text, m, kindGroup))
			start, okStart := p.Dates.Parse(group(text, m, startGroup))
			end, okEnd := p.Dates.Parse(group(text, m, endGroup))
			if !okStart || !okEnd || !p.inWindow(start) || !p.inWindow(end) {
				continue
			}
			if !end.After(start) {
				continue
			}
			out = append(out, entity.NonPaymentPeriod{
				Kind:   kind,
				Start:  start,
				End:    end,
				Reason: extractReason(surrounding(text, m[0], m[1], 120)),
			})
		}
	}

	collect(reNonPayForward, 1, 2, 3)
	collect(reNonPayReverse, 3, 1, 2)
	return out
}

// periodsFromSections opens a section on a forbearance/deferment keyword,
// closes it on a new-section heading or after enough lines, then pairs the
// in-window dates found inside sequentially. A pair is accepted only when
// the end follows the start by no more than 60 days.
func (p *Pipeline) periodsFromSections(lines []string) []entity.NonPaymentPeriod {
	var out []entity.NonPaymentPeriod
	for i := 0; i < len(lines); i++ {
		kind := kindFromKeyword(lines[i])
		if kind == "" {
			continue
		}

		section := []string{lines[i]}
		j := i + 1
		for ; j < len(lines) && len(section) < maxSectionLines; j++ {
			if textparse.IsSectionBoundary(lines[j]) {
				break
			}
			section = append(section, lines[j])
		}
		text := strings.Join(section, "\n")

		dates := p.scanDates(text)
		for k := 0; k+1 < len(dates); k += 2 {
			start, end := dates[k], dates[k+1]
			if !end.After(start) || end.Sub(start) > maxSectionPairSpan {
				continue
			}
			out = append(out, entity.NonPaymentPeriod{
				Kind:   kind,
				Start:  start,
				End:    end,
				Reason: extractReason(text),
			})
		}
		i = j - 1
	}
	return out
}

// mergePeriod appends the candidate unless an existing period of the same
// kind has both endpoints within three days of it.
func mergePeriod(existing []entity.NonPaymentPeriod, cand entity.NonPaymentPeriod) []entity.NonPaymentPeriod {
	for _, e := range existing {
		if e.Kind != cand.Kind {
			continue
		}
		if absDuration(e.Start.Sub(cand.Start)) <= periodDedupTolerance &&
			absDuration(e.End.Sub(cand.End)) <= periodDedupTolerance {
			return existing
		}
	}
	return append(existing, cand)
}

func kindFromKeyword(s string) entity.NonPaymentKind {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "forbearance"):
		return entity.KindForbearance
	case strings.Contains(lower, "deferment"):
		return entity.KindDeferment
	default:
		return ""
	}
}

// extractReason opportunistically pulls a reason phrase from nearby text
// and capitalizes it; absent when no pattern matches.
func extractReason(text string) *string {
	for _, re := range reasonPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			reason := strings.TrimSpace(m[1])
			if reason == "" {
				continue
			}
			reason = strings.ToUpper(reason[:1]) + reason[1:]
			return &reason
		}
	}
	return nil
}

func group(text string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}

func surrounding(text string, lo, hi, pad int) string {
	lo -= pad
	if lo < 0 {
		lo = 0
	}
	hi += pad
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
