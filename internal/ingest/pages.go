package ingest

import (
	"fmt"
	"os"
	"strings"
)

// ReadPages loads a statement text dump and splits it into per-page text.
// Pages are separated by form feeds, the convention used by most
// pdftotext-style extractors. A file with no form feeds is one page.
func ReadPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read statement %s: %w", path, err)
	}
	return strings.Split(string(data), "\f"), nil
}
