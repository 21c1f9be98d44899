// Package reconcile resolves the loose association between cost entries and
// freights. The upstream store keeps the cost side of the relation as free
// text (sometimes an id, sometimes a display code, with inconsistent casing
// and accents), so matching is done on a canonical form of both sides.
package reconcile

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes an identifier-like value for comparison: convert
// to string, trim, lowercase, strip diacritics and drop everything that is
// not a lowercase ASCII letter or digit. Nil and empty inputs normalize to
// the empty string. Idempotent.
func Normalize(value any) string {
	if value == nil {
		return ""
	}

	s := strings.TrimSpace(fmt.Sprint(value))
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
