package rfdim

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangeSeparator joins spans in CONTIGS and INPAINT_SEQ strings.
const rangeSeparator = "/"

// Span is a closed run of residues on a single chain, e.g. A50-56.
// Singletons are rendered start-start so every span looks the same to
// the downstream pipeline.
type Span struct {
	Chain string
	Start int
	End   int
}

// String renders the span in range notation, e.g. "A5-7" or "A10-10".
func (s Span) String() string {
	return fmt.Sprintf("%s%d-%d", s.Chain, s.Start, s.End)
}

// Len is the number of residues the span covers.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Keys expands the span to its explicit residue keys, in ascending order.
func (s Span) Keys() []ResidueKey {
	keys := make([]ResidueKey, 0, s.Len())
	for n := s.Start; n <= s.End; n++ {
		keys = append(keys, ResidueKey{Chain: s.Chain, Num: n})
	}
	return keys
}

// spanRegex matches one chain-qualified range, e.g. "A2-15". The chain is
// a single letter, as written by PyMOL and read by RFdiffusion.
var spanRegex = regexp.MustCompile(`^([A-Za-z])(\d+)-(\d+)$`)

// singleRegex matches a bare residue, e.g. "B3", accepted in selection
// expressions as shorthand for "B3-3".
var singleRegex = regexp.MustCompile(`^([A-Za-z])(\d+)$`)

// ParseSpan parses a single chain-qualified range like "A2-15". Inverted
// bounds and non-numeric text are rejected, never truncated.
func ParseSpan(part string) (Span, error) {
	m := spanRegex.FindStringSubmatch(part)
	if m == nil {
		return Span{}, fmt.Errorf("malformed range %q: want e.g. A2-15", part)
	}

	// The regex only admits digit runs, so Atoi fails solely on overflow.
	start, err := strconv.Atoi(m[2])
	if err != nil {
		return Span{}, fmt.Errorf("malformed range %q: %v", part, err)
	}
	end, err := strconv.Atoi(m[3])
	if err != nil {
		return Span{}, fmt.Errorf("malformed range %q: %v", part, err)
	}

	if end < start {
		return Span{}, fmt.Errorf("inverted range %q: %d is before %d", part, end, start)
	}

	return Span{Chain: strings.ToUpper(m[1]), Start: start, End: end}, nil
}

// ParseRanges parses a '/'-joined range string like "A5-7/A10-10/B3-9"
// into its spans. Empty parts are skipped; an empty string is the empty
// span list. Any malformed part fails the whole parse.
func ParseRanges(s string) ([]Span, error) {
	var spans []Span
	for _, part := range strings.Split(s, rangeSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		span, err := ParseSpan(part)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}
	return spans, nil
}

// FormatRanges renders spans as a '/'-joined range string. The inverse of
// ParseRanges for spans produced by EncodeSpans.
func FormatRanges(spans []Span) string {
	parts := make([]string, len(spans))
	for i, span := range spans {
		parts[i] = span.String()
	}
	return strings.Join(parts, rangeSeparator)
}

// ExpandSpans flattens spans into the explicit residue set they cover.
// Overlapping spans yield duplicate keys; EncodeSpans collapses them.
func ExpandSpans(spans []Span) []ResidueKey {
	var keys []ResidueKey
	for _, span := range spans {
		keys = append(keys, span.Keys()...)
	}
	return keys
}

// EncodeSpans compresses residue keys into the minimal ordered span list
// whose union is exactly the input set. Keys may arrive unsorted or
// duplicated; output is ordered by chain then by residue number, with
// each span maximal.
func EncodeSpans(keys []ResidueKey) []Span {
	if len(keys) == 0 {
		return nil
	}

	sorted := make([]ResidueKey, len(keys))
	copy(sorted, keys)
	sortKeys(sorted)

	var spans []Span
	cur := Span{Chain: sorted[0].Chain, Start: sorted[0].Num, End: sorted[0].Num}
	for _, k := range sorted[1:] {
		if k.Chain == cur.Chain && k.Num <= cur.End+1 {
			if k.Num > cur.End {
				cur.End = k.Num
			}
			continue
		}
		spans = append(spans, cur)
		cur = Span{Chain: k.Chain, Start: k.Num, End: k.Num}
	}
	return append(spans, cur)
}

// ParseSelection parses an editing-session selection expression: range
// and singleton terms separated by commas and/or spaces, e.g.
// "A5-12,B3 C1-4". Returns the covered residue keys in input order.
func ParseSelection(expr string) ([]ResidueKey, error) {
	terms := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty selection")
	}

	var keys []ResidueKey
	for _, term := range terms {
		if m := singleRegex.FindStringSubmatch(term); m != nil {
			num, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("malformed selection %q: %v", term, err)
			}
			keys = append(keys, ResidueKey{Chain: strings.ToUpper(m[1]), Num: num})
			continue
		}

		span, err := ParseSpan(term)
		if err != nil {
			return nil, err
		}
		keys = append(keys, span.Keys()...)
	}
	return keys, nil
}
