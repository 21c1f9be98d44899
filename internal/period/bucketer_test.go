package period

import (
	"testing"
	"time"
)

func TestParseFlexibleDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string // yyyy-mm-dd, empty means unparseable
	}{
		{name: "iso date", input: "2026-02-10", want: "2026-02-10"},
		{name: "iso timestamp truncated", input: "2026-02-10T15:04:05Z", want: "2026-02-10"},
		{name: "brazilian date", input: "10/02/2026", want: "2026-02-10"},
		{name: "padded", input: "  2026-02-10  ", want: "2026-02-10"},
		{name: "slash layout", input: "2026/02/10", want: "2026-02-10"},
		{name: "garbage", input: "not a date", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseFlexibleDate(tc.input)
			if tc.want == "" {
				if ok {
					t.Fatalf("ParseFlexibleDate(%q) parsed to %v, want failure", tc.input, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ParseFlexibleDate(%q) failed, want %s", tc.input, tc.want)
			}
			if formatted := got.Format("2006-01-02"); formatted != tc.want {
				t.Fatalf("ParseFlexibleDate(%q) = %s, want %s", tc.input, formatted, tc.want)
			}
		})
	}
}

func TestParseFlexibleDateNoUTCDayShift(t *testing.T) {
	t.Parallel()

	// An ISO date must land on the same calendar day in the local zone,
	// whatever that zone's offset is.
	got, ok := ParseFlexibleDate("2026-01-01")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got.Day() != 1 || got.Month() != time.January || got.Year() != 2026 {
		t.Fatalf("date shifted: got %v", got)
	}
}

func TestBucketKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		g    Granularity
		want string
	}{
		{date: "2026-02-10", g: Monthly, want: "2026-02"},
		{date: "2026-02-10", g: Quarterly, want: "2026-T1"},
		{date: "2026-04-01", g: Quarterly, want: "2026-T2"},
		{date: "2026-12-31", g: Quarterly, want: "2026-T4"},
		{date: "2026-06-30", g: Semestral, want: "2026-S1"},
		{date: "2026-07-01", g: Semestral, want: "2026-S2"},
		{date: "2026-02-10", g: Annual, want: "2026"},
	}

	for _, tc := range tests {
		parsed, ok := ParseFlexibleDate(tc.date)
		if !ok {
			t.Fatalf("fixture date %q did not parse", tc.date)
		}
		if got := BucketKey(parsed, tc.g); got != tc.want {
			t.Fatalf("BucketKey(%s, %s) = %q, want %q", tc.date, tc.g, got, tc.want)
		}
	}
}

func TestDerivePeriods(t *testing.T) {
	t.Parallel()

	dates := []string{"2025-01-05", "2025-03-20", "2026-01-01", "2025-01-31", "rabisco", ""}

	got := DerivePeriods(dates, Monthly, func(d string) string { return d })
	want := []string{"2025-01", "2025-03", "2026-01"}
	if len(got) != len(want) {
		t.Fatalf("DerivePeriods = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DerivePeriods = %v, want %v", got, want)
		}
	}
}

func TestDefaultPeriod(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.Local)
	if got := DefaultPeriod(Quarterly, now); got != "2026-T3" {
		t.Fatalf("DefaultPeriod quarterly = %q, want 2026-T3", got)
	}
	if got := DefaultPeriod(Monthly, now); got != "2026-08" {
		t.Fatalf("DefaultPeriod monthly = %q, want 2026-08", got)
	}
}

func TestFormatLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		g    Granularity
		want string
	}{
		{key: "2026-02", g: Monthly, want: "Fevereiro 2026"},
		{key: "2026-T1", g: Quarterly, want: "1º Trimestre 2026"},
		{key: "2026-S2", g: Semestral, want: "2º Semestre 2026"},
		{key: "2026", g: Annual, want: "2026"},
		{key: "lixo", g: Monthly, want: "lixo"},
		{key: "2026-T9", g: Quarterly, want: "2026-T9"},
	}

	for _, tc := range tests {
		if got := FormatLabel(tc.key, tc.g); got != tc.want {
			t.Fatalf("FormatLabel(%q, %s) = %q, want %q", tc.key, tc.g, got, tc.want)
		}
	}
}
