// Package period buckets dated records into calendar periods (month,
// quarter, semester, year) for filtering, summary cards and report export.
// Keys are fixed-width and zero-padded so lexicographic order is
// chronological order.
package period

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Granularity selects the calendar bucket size.
type Granularity string

const (
	Monthly   Granularity = "mensal"
	Quarterly Granularity = "trimestral"
	Semestral Granularity = "semestral"
	Annual    Granularity = "anual"
)

// ParseGranularity maps query-string input to a Granularity, defaulting to
// Monthly for anything unrecognized.
func ParseGranularity(raw string) Granularity {
	switch Granularity(strings.ToLower(strings.TrimSpace(raw))) {
	case Quarterly:
		return Quarterly
	case Semestral:
		return Semestral
	case Annual:
		return Annual
	default:
		return Monthly
	}
}

// dateLayouts are tried in order after the two explicit formats. Timestamps
// longer than a plain date are truncated to their date part first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
}

// ParseFlexibleDate accepts ISO YYYY-MM-DD (read as a local calendar date so
// the day is never shifted by a timezone conversion), DD/MM/YYYY, or one of
// a few free-form layouts. The second return is false when nothing matches.
func ParseFlexibleDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}

	if len(s) >= 10 {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, true
		}
		if t, err := time.ParseInLocation("02/01/2006", s[:10], time.Local); err == nil {
			return t, true
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BucketKey maps a date to its period key at the given granularity:
// YYYY-MM, YYYY-T1..T4, YYYY-S1|S2 or YYYY.
func BucketKey(t time.Time, g Granularity) string {
	year, month, _ := t.Date()
	switch g {
	case Quarterly:
		quarter := (int(month) + 2) / 3
		return fmt.Sprintf("%04d-T%d", year, quarter)
	case Semestral:
		semester := 1
		if month > time.June {
			semester = 2
		}
		return fmt.Sprintf("%04d-S%d", year, semester)
	case Annual:
		return fmt.Sprintf("%04d", year)
	default:
		return fmt.Sprintf("%04d-%02d", year, int(month))
	}
}

// BucketKeyOf parses a raw date string and returns its bucket key, or the
// empty string when the date cannot be parsed. Records with an empty key are
// excluded by every period filter rather than raising an error.
func BucketKeyOf(rawDate string, g Granularity) string {
	t, ok := ParseFlexibleDate(rawDate)
	if !ok {
		return ""
	}
	return BucketKey(t, g)
}

// DerivePeriods collects the distinct period keys present in a dataset,
// dropping records whose date does not parse, sorted ascending.
func DerivePeriods[T any](records []T, g Granularity, dateOf func(T) string) []string {
	set := make(map[string]struct{})
	for _, rec := range records {
		if key := BucketKeyOf(dateOf(rec), g); key != "" {
			set[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DefaultPeriod is the bucket key of now at the given granularity.
func DefaultPeriod(g Granularity, now time.Time) string {
	return BucketKey(now, g)
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// FormatLabel renders a period key for display. Unparseable keys come back
// unchanged so a stale key never breaks rendering.
func FormatLabel(key string, g Granularity) string {
	switch g {
	case Quarterly:
		var year, quarter int
		if _, err := fmt.Sscanf(key, "%d-T%d", &year, &quarter); err == nil && quarter >= 1 && quarter <= 4 {
			return fmt.Sprintf("%dº Trimestre %d", quarter, year)
		}
	case Semestral:
		var year, semester int
		if _, err := fmt.Sscanf(key, "%d-S%d", &year, &semester); err == nil && (semester == 1 || semester == 2) {
			return fmt.Sprintf("%dº Semestre %d", semester, year)
		}
	case Annual:
		return key
	default:
		var year, month int
		if _, err := fmt.Sscanf(key, "%d-%d", &year, &month); err == nil && month >= 1 && month <= 12 {
			return fmt.Sprintf("%s %d", monthNames[month-1], year)
		}
	}
	return key
}
