package models

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain number", input: `{"v": 1250.5}`, want: 1250.5},
		{name: "quoted number", input: `{"v": "1250.5"}`, want: 1250.5},
		{name: "comma decimal", input: `{"v": "1.250,50"}`, want: 1250.5},
		{name: "null", input: `{"v": null}`, want: 0},
		{name: "empty string", input: `{"v": ""}`, want: 0},
		{name: "garbage coerced to zero", input: `{"v": "n/a"}`, want: 0},
		{name: "quoted NaN coerced to zero", input: `{"v": "NaN"}`, want: 0},
		{name: "quoted Inf coerced to zero", input: `{"v": "Inf"}`, want: 0},
		{name: "quoted negative Infinity coerced to zero", input: `{"v": "-Infinity"}`, want: 0},
		{name: "missing field", input: `{}`, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var payload struct {
				V FlexFloat `json:"v"`
			}
			if err := json.Unmarshal([]byte(tc.input), &payload); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if payload.V.Float64() != tc.want {
				t.Fatalf("FlexFloat from %s = %v, want %v", tc.input, payload.V.Float64(), tc.want)
			}
		})
	}
}

func TestIncludedFreightIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain list", input: "1,2,3", want: []string{"1", "2", "3"}},
		{name: "padded entries", input: " 1 , 2 ,3 ", want: []string{"1", "2", "3"}},
		{name: "trailing comma", input: "1,2,", want: []string{"1", "2"}},
		{name: "empty segments", input: "1,,  ,2", want: []string{"1", "2"}},
		{name: "empty string", input: "", want: nil},
		{name: "only separators", input: " , , ", want: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			batch := PaymentBatch{FretesIncluidos: tc.input}
			got := batch.IncludedFreightIDs()
			if len(got) != len(tc.want) {
				t.Fatalf("IncludedFreightIDs(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("IncludedFreightIDs(%q) = %v, want %v", tc.input, got, tc.want)
				}
			}
		})
	}
}

func TestFreightRevenue(t *testing.T) {
	t.Parallel()

	stored := Freight{Receita: 15000, PesoToneladas: 30, PrecoTonelada: 400}
	if got := stored.Revenue(); got != 15000 {
		t.Fatalf("stored revenue = %v, want 15000", got)
	}

	derived := Freight{PesoToneladas: 30, PrecoTonelada: 400}
	if got := derived.Revenue(); got != 12000 {
		t.Fatalf("derived revenue = %v, want 12000", got)
	}
}
