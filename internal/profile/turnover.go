package profile

import (
	"strconv"
	"strings"
)

// TurnoverKind tags the Turnover union.
type TurnoverKind int

const (
	TurnoverUnknown TurnoverKind = iota
	TurnoverExact
	TurnoverRange
)

// Turnover is annual turnover in pounds, parsed once from the free-text
// signup field. Unknown suppresses every threshold check downstream.
type Turnover struct {
	Kind TurnoverKind
	// Exact value when Kind == TurnoverExact.
	Value float64
	// Range bounds when Kind == TurnoverRange.
	Low, High float64
}

// Known reports whether any turnover figure is available.
func (t Turnover) Known() bool { return t.Kind != TurnoverUnknown }

// Amount returns the representative figure: the exact value, or the
// midpoint of a range. Zero when unknown.
func (t Turnover) Amount() float64 {
	switch t.Kind {
	case TurnoverExact:
		return t.Value
	case TurnoverRange:
		return (t.Low + t.High) / 2
	default:
		return 0
	}
}

// ExactTurnover builds an exact turnover value.
func ExactTurnover(v float64) Turnover {
	return Turnover{Kind: TurnoverExact, Value: v}
}

// RangeTurnover builds a range turnover value.
func RangeTurnover(lo, hi float64) Turnover {
	return Turnover{Kind: TurnoverRange, Low: lo, High: hi}
}

// ParseTurnover parses the free-text turnover field. Accepted forms:
//
//	"85000", "£85,000", " 85 000 "  -> exact
//	"50000-85000", "60k-85k"        -> range
//	"90k", "90K", "100k+"           -> exact (k means x1000, + ignored)
//
// Anything else, including the empty string, parses to Unknown. The
// parser never returns an error: malformed input is treated as absent
// data, per the engine's degrade-not-fail rule.
func ParseTurnover(raw string) Turnover {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Turnover{}
	}

	if lo, hi, ok := splitRange(s); ok {
		a, aok := parseAmount(lo)
		b, bok := parseAmount(hi)
		if aok && bok {
			return RangeTurnover(a, b)
		}
		return Turnover{}
	}

	if v, ok := parseAmount(s); ok {
		return ExactTurnover(v)
	}
	return Turnover{}
}

// splitRange splits "A-B" into its two halves. A leading "-" is not a
// range (and no valid amount starts with one anyway).
func splitRange(s string) (string, string, bool) {
	i := strings.Index(s, "-")
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// parseAmount parses a single turnover figure: currency symbols, commas
// and inner whitespace stripped, optional trailing "k" multiplier,
// optional trailing "+" ignored.
func parseAmount(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '£', ',', ' ', '\t':
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimSuffix(cleaned, "+")

	mult := 1.0
	lower := strings.ToLower(cleaned)
	if strings.HasSuffix(lower, "k") {
		mult = 1000
		cleaned = cleaned[:len(cleaned)-1]
	}

	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v * mult, true
}

// turnoverBuckets maps the seven discrete signup bucket labels to
// representative midpoints, used by the MTD seasonal group gate.
var turnoverBuckets = map[string]float64{
	"under_20k": 10_000,
	"20k-40k":   30_000,
	"40k-60k":   50_000,
	"60k-85k":   72_500,
	"85k-150k":  117_500,
	"150k-300k": 225_000,
	"over_300k": 350_000,
}

// ResolveTurnover converts any stored turnover encoding (a plain figure,
// a range, or one of the signup bucket labels) into a Turnover. This is
// the single entry point the data-loading layer should use.
func ResolveTurnover(raw string) Turnover {
	if v, ok := turnoverBuckets[normalize(raw)]; ok {
		return ExactTurnover(v)
	}
	return ParseTurnover(raw)
}

// BucketAmount resolves a signup bucket label to its representative
// midpoint. Falls back to the turnover parser for non-bucket input, so
// callers can pass either encoding.
func BucketAmount(label string) (float64, bool) {
	if v, ok := turnoverBuckets[normalize(label)]; ok {
		return v, true
	}
	t := ParseTurnover(label)
	if !t.Known() {
		return 0, false
	}
	return t.Amount(), true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
