package reconcile

import "testing"

func TestIsLinked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
		id   string
		code string
		want bool
	}{
		{name: "match by id", ref: "abc123", id: "abc123", code: "FRETE-2026-007", want: true},
		{name: "match by code despite different id", ref: "FRETE-2026-007", id: "abc123", code: "FRETE-2026-007", want: true},
		{name: "case and punctuation insensitive", ref: "frete 2026 007", id: "x", code: "FRETE-2026-007", want: true},
		{name: "no substring match", ref: "2026", id: "abc123", code: "FRETE-2026-007", want: false},
		{name: "all empty", ref: "", id: "", code: "", want: false},
		{name: "empty ref against code-less freight", ref: "", id: "abc123", code: "", want: false},
		{name: "ref against empty freight", ref: "abc123", id: "", code: "", want: false},
		{name: "unrelated", ref: "toll-99", id: "abc123", code: "FRETE-2026-007", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsLinked(tc.ref, tc.id, tc.code); got != tc.want {
				t.Fatalf("IsLinked(%q, %q, %q) = %v, want %v", tc.ref, tc.id, tc.code, got, tc.want)
			}
		})
	}
}

func TestFallbackCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want string
	}{
		{id: "abc123def456", want: "ABC123DE"},
		{id: "short", want: "SHORT"},
		{id: "  padded-id  ", want: "PADDED-I"},
		{id: "cárga-2026-015", want: "CÁRGA-20"},
		{id: "", want: ""},
	}

	for _, tc := range tests {
		if got := FallbackCode(tc.id); got != tc.want {
			t.Fatalf("FallbackCode(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
