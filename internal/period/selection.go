package period

import "time"

// Selection tracks the period a caller is currently looking at. There is no
// "nothing selected" state once data exists: the selection always resolves
// to the default period or the most recent one available.
type Selection struct {
	Granularity Granularity
	Key         string
}

// NewSelection starts at the default period of the granularity, adjusted to
// the dataset exactly like a granularity change would be.
func NewSelection(g Granularity, now time.Time, available []string) Selection {
	return Selection{Granularity: g}.WithGranularity(g, now, available)
}

// WithGranularity switches bucket size: prefer the new granularity's default
// period when the dataset contains it, otherwise fall back to the most
// recent available period. With no periods at all the selection keeps the
// default key, a benign state that matches nothing until data arrives.
func (s Selection) WithGranularity(g Granularity, now time.Time, available []string) Selection {
	def := DefaultPeriod(g, now)
	next := Selection{Granularity: g, Key: def}

	if contains(available, def) {
		return next
	}
	if len(available) > 0 {
		next.Key = mostRecent(available)
	}
	return next
}

// AfterReload re-validates the selection against a freshly derived period
// list: a key that disappeared from the dataset snaps to the most recent
// remaining one.
func (s Selection) AfterReload(available []string) Selection {
	if len(available) == 0 || contains(available, s.Key) {
		return s
	}
	return Selection{Granularity: s.Granularity, Key: mostRecent(available)}
}

// Label renders the selected period for display.
func (s Selection) Label() string {
	return FormatLabel(s.Key, s.Granularity)
}

// mostRecent relies on period keys sorting chronologically.
func mostRecent(sortedAsc []string) string {
	return sortedAsc[len(sortedAsc)-1]
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
