package reconcile

import "strings"

// IsLinked reports whether a cost entry's freight reference belongs to the
// freight identified by id/code. The match is exact on the normalized forms,
// against either the identifier or the code; substring matching is never
// used, so a short numeric id cannot accidentally match an unrelated code.
// An empty normalized reference matches nothing, even another empty value,
// otherwise every code-less freight would attract every unreferenced cost.
func IsLinked(costFreightRef, freightID, freightCode string) bool {
	ref := Normalize(costFreightRef)
	if ref == "" {
		return false
	}

	if id := Normalize(freightID); id != "" && ref == id {
		return true
	}
	if code := Normalize(freightCode); code != "" && ref == code {
		return true
	}
	return false
}

// FallbackCode derives a display code for a freight that has no
// human-readable one: the first 8 characters of its identifier, upper-cased.
// Presentation only; never use it as a matching key.
func FallbackCode(freightID string) string {
	id := []rune(strings.TrimSpace(freightID))
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(string(id))
}
