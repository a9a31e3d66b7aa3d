package repository

import (
	"strings"
	"testing"
)

func TestFingerprint_Stable(t *testing.T) {
	pages := []string{"page one text", "page two text"}
	a := Fingerprint(pages)
	b := Fingerprint([]string{"page one text", "page two text"})
	if a != b {
		t.Errorf("same pages must fingerprint identically: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "stmt:") {
		t.Errorf("unexpected key shape %q", a)
	}
}

func TestFingerprint_PageBoundariesMatter(t *testing.T) {
	a := Fingerprint([]string{"abc", "def"})
	b := Fingerprint([]string{"abcdef"})
	if a == b {
		t.Error("reflowed pages must not collide")
	}

	c := Fingerprint([]string{"abc", "deg"})
	if a == c {
		t.Error("different content must not collide")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss on an empty cache")
	}
	if err := c.Set("stmt:abc", "done"); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok := c.Get("stmt:abc")
	if !ok || val != "done" {
		t.Errorf("Get = (%q, %v)", val, ok)
	}
}
