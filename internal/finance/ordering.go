package finance

import (
	"regexp"
	"strconv"
	"strings"
)

// Freight codes carry a free-text prefix followed by a year and a sequence
// number, e.g. "FRETE-2026-007" or "carga 2025/31". The trailing pair is
// what orders codes chronologically regardless of the prefix.
var codeYearSeq = regexp.MustCompile(`((?:19|20)\d{2})\D*(\d+)\s*$`)

type codeKey struct {
	year int
	seq  int
	ok   bool
}

func extractCodeKey(code string) codeKey {
	m := codeYearSeq.FindStringSubmatch(strings.TrimSpace(code))
	if m == nil {
		return codeKey{}
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return codeKey{}
	}
	seq, err := strconv.Atoi(m[2])
	if err != nil {
		return codeKey{}
	}
	return codeKey{year: year, seq: seq, ok: true}
}

// CompareByCodeDesc orders two freights most-recent-code-first: year
// descending, then sequence descending. A record whose code yields no
// year/sequence pair sorts after one that has a pair; when neither has one,
// the raw identifiers compare descending. Returns a negative value when the
// first record sorts first, following the cmp convention.
func CompareByCodeDesc(codeA, idA, codeB, idB string) int {
	ka, kb := extractCodeKey(codeA), extractCodeKey(codeB)

	switch {
	case ka.ok && kb.ok:
		if ka.year != kb.year {
			return kb.year - ka.year
		}
		if ka.seq != kb.seq {
			return kb.seq - ka.seq
		}
		return strings.Compare(idB, idA)
	case ka.ok:
		return -1
	case kb.ok:
		return 1
	default:
		return strings.Compare(idB, idA)
	}
}

// TrailingSequence parses the digits at the end of a code. Used as the
// secondary presentation tie-break in category listings; 0 when the code
// carries no trailing digits.
func TrailingSequence(code string) int {
	trimmed := strings.TrimRight(strings.TrimSpace(code), " ")
	end := len(trimmed)
	start := end
	for start > 0 && trimmed[start-1] >= '0' && trimmed[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0
	}
	seq, err := strconv.Atoi(trimmed[start:end])
	if err != nil {
		return 0
	}
	return seq
}
