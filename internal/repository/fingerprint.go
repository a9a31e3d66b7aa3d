package repository

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint derives a stable cache key from raw page text. Page
// boundaries are part of the hash so reflowed documents don't collide.
func Fingerprint(pages []string) string {
	h := xxhash.New()
	for _, page := range pages {
		_, _ = h.WriteString(page)
		_, _ = h.Write([]byte{0x1e}) // record separator between pages
	}
	return fmt.Sprintf("stmt:%016x", h.Sum64())
}
