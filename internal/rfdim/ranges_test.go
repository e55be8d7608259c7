package rfdim

import (
	"reflect"
	"testing"
)

func Test_ParseSpan(t *testing.T) {
	type args struct {
		part string
	}
	tests := []struct {
		name    string
		args    args
		want    Span
		wantErr bool
	}{
		{
			"multi residue range",
			args{"A2-15"},
			Span{Chain: "A", Start: 2, End: 15},
			false,
		},
		{
			"singleton range",
			args{"B7-7"},
			Span{Chain: "B", Start: 7, End: 7},
			false,
		},
		{
			"lowercase chain normalized",
			args{"c3-9"},
			Span{Chain: "C", Start: 3, End: 9},
			false,
		},
		{
			"inverted bounds rejected",
			args{"A10-5"},
			Span{},
			true,
		},
		{
			"missing chain rejected",
			args{"10-15"},
			Span{},
			true,
		},
		{
			"non numeric bound rejected",
			args{"A5-x"},
			Span{},
			true,
		},
		{
			"bare residue is not a range",
			args{"A5"},
			Span{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpan(tt.args.part)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSpan() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseSpan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ParseRanges(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name    string
		args    args
		want    []Span
		wantErr bool
	}{
		{
			"two chains",
			args{"A5-7/A10-10/B3-9"},
			[]Span{
				{Chain: "A", Start: 5, End: 7},
				{Chain: "A", Start: 10, End: 10},
				{Chain: "B", Start: 3, End: 9},
			},
			false,
		},
		{
			"empty string is empty list",
			args{""},
			nil,
			false,
		},
		{
			"empty parts skipped",
			args{"A5-7//A10-10/"},
			[]Span{
				{Chain: "A", Start: 5, End: 7},
				{Chain: "A", Start: 10, End: 10},
			},
			false,
		},
		{
			"one malformed part fails the parse",
			args{"A5-7/A10-5"},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanges(tt.args.s)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRanges() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRanges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_EncodeSpans(t *testing.T) {
	type args struct {
		keys []ResidueKey
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"consecutive run and singleton",
			args{[]ResidueKey{{"A", 5}, {"A", 6}, {"A", 7}, {"A", 10}}},
			"A5-7/A10-10",
		},
		{
			"unsorted input",
			args{[]ResidueKey{{"A", 10}, {"A", 6}, {"A", 5}, {"A", 7}}},
			"A5-7/A10-10",
		},
		{
			"duplicates collapse",
			args{[]ResidueKey{{"A", 5}, {"A", 5}, {"A", 6}}},
			"A5-6",
		},
		{
			"run never crosses chains",
			args{[]ResidueKey{{"A", 1}, {"A", 2}, {"B", 3}, {"B", 4}}},
			"A1-2/B3-4",
		},
		{
			"no residues",
			args{nil},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRanges(EncodeSpans(tt.args.keys)); got != tt.want {
				t.Errorf("FormatRanges(EncodeSpans()) = %v, want %v", got, tt.want)
			}
		})
	}
}

// encoding then decoding any ascending residue set must yield the set back
func Test_rangeRoundTrip(t *testing.T) {
	sets := [][]ResidueKey{
		{{"A", 1}},
		{{"A", 5}, {"A", 6}, {"A", 7}, {"A", 10}},
		{{"A", 1}, {"B", 1}, {"B", 2}, {"C", 100}, {"C", 102}, {"C", 104}},
		{{"H", 9999}},
	}

	for _, keys := range sets {
		encoded := FormatRanges(EncodeSpans(keys))
		spans, err := ParseRanges(encoded)
		if err != nil {
			t.Fatalf("ParseRanges(%q) error = %v", encoded, err)
		}

		got := ExpandSpans(spans)
		sortKeys(got)
		if !reflect.DeepEqual(got, keys) {
			t.Errorf("round trip of %v through %q = %v", keys, encoded, got)
		}
	}
}

func Test_ParseSelection(t *testing.T) {
	type args struct {
		expr string
	}
	tests := []struct {
		name    string
		args    args
		want    []ResidueKey
		wantErr bool
	}{
		{
			"range and bare residue",
			args{"A5-7,B3"},
			[]ResidueKey{{"A", 5}, {"A", 6}, {"A", 7}, {"B", 3}},
			false,
		},
		{
			"space separated terms",
			args{"A1 b2"},
			[]ResidueKey{{"A", 1}, {"B", 2}},
			false,
		},
		{
			"empty expression",
			args{"  "},
			nil,
			true,
		},
		{
			"inverted range",
			args{"A5,A10-5"},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.args.expr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSelection() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSelection() = %v, want %v", got, tt.want)
			}
		})
	}
}
