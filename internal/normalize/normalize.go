package normalize

import (
	"regexp"
	"strings"

	"loan-audit/internal/common"
)

// MinLineLength drops fragments too short to carry a field or keyword.
const MinLineLength = 5

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
)

// Document is the normalized view of one statement: an ordered, immutable
// sequence of trimmed text lines. Created once per parse and discarded
// after the loan record is assembled.
type Document struct {
	lines []string
}

// Pages flattens raw per-page text into a normalized document. Empty page
// entries are skipped. Fails with DOCUMENT_EMPTY when no pages were
// supplied at all, and UNREADABLE_DOCUMENT when normalization leaves zero
// usable lines (image-only scans).
func Pages(pages []string) (*Document, error) {
	if len(pages) == 0 {
		return nil, common.NewDocumentEmpty()
	}

	var lines []string
	for _, page := range pages {
		if page == "" {
			continue
		}
		page = reCRLF.ReplaceAllString(page, "\n")
		page = reTabs.ReplaceAllString(page, " ")
		page = reMultiSpace.ReplaceAllString(page, " ")
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			if len(line) < MinLineLength {
				continue
			}
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, common.NewUnreadableDocument()
	}
	return &Document{lines: lines}, nil
}

// Lines returns the normalized lines in document order. Callers must not
// mutate the returned slice.
func (d *Document) Lines() []string {
	return d.lines
}

func (d *Document) Len() int {
	return len(d.lines)
}

// Header returns up to the first n lines, where field extractors expect
// letterhead and summary boxes to appear.
func (d *Document) Header(n int) []string {
	if n > len(d.lines) {
		n = len(d.lines)
	}
	return d.lines[:n]
}

// Text joins all lines into a single newline-separated string for the
// free-text sequence extractors.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}
