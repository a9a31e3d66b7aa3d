package extract

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"loan-audit/constants"
)

var (
	reIDToken = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9-]{3,}`)

	// explicit fallback patterns, tried after the keyword-adjacency scan
	accountIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)account\s*(?:number|no\.?|#)?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]{3,})`),
		regexp.MustCompile(`(?i)loan\s*(?:id|number)\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]{3,})`),
	}
)

// extractAccountID is deliberately lenient: when every strategy misses it
// generates a synthetic placeholder instead of failing, since a missing ID
// does not block the audit.
func (p *Pipeline) extractAccountID(lines []string) string {
	for _, line := range lines {
		lower := lowerASCII(line)
		for _, kw := range constants.AccountIDKeywords {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			rest := line[idx+len(kw):]
			for _, tok := range reIDToken.FindAllString(rest, -1) {
				if strings.ContainsAny(tok, "0123456789") {
					return tok
				}
			}
		}
	}

	for _, line := range lines {
		for _, re := range accountIDPatterns {
			if m := re.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
	}

	placeholder := "UNKNOWN-" + strings.ToUpper(uuid.NewString()[:8])
	p.Logger.Warn("extract.account_id.placeholder", "account_id", placeholder)
	return placeholder
}
