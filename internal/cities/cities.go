// Package cities normalizes free-text city names and parses delimited path
// strings. It is the only entry point for unparsed path input; every other
// component works with already-normalized stop lists.
package cities

import (
	"errors"
	"regexp"
	"strings"
)

// ErrTooFewStops is returned when fewer than two distinct stops survive
// parsing. Callers surface it as a validation failure.
var ErrTooFewStops = errors.New("at least 2 stops required (origin, destination)")

// delimiters: hyphen, em-dash, arrow glyph or ">" (covers "->"), with
// optional surrounding whitespace
var pathDelimiter = regexp.MustCompile(`\s*[-—→>]\s*`)

// Normalize collapses internal whitespace runs to single spaces and trims
// the ends. City comparison is case-insensitive everywhere; Normalize keeps
// the original casing for display.
func Normalize(city string) string {
	return strings.Join(strings.Fields(city), " ")
}

// Equal reports whether two city names match after normalization,
// case-insensitively.
func Equal(a, b string) bool {
	return strings.EqualFold(Normalize(a), Normalize(b))
}

// ParsePath splits a path string like "Moscow - Kazan -> Ufa" into an
// ordered stop list. Empty segments are dropped and immediately repeated
// cities are collapsed into one.
func ParsePath(text string) ([]string, error) {
	return dedupe(pathDelimiter.Split(text, -1))
}

// SplitStops applies the same normalization and consecutive-duplicate
// collapse to an already-split stop list.
func SplitStops(stops []string) ([]string, error) {
	return dedupe(stops)
}

func dedupe(parts []string) ([]string, error) {
	var out []string
	for _, p := range parts {
		p = Normalize(p)
		if p == "" {
			continue
		}
		if len(out) > 0 && strings.EqualFold(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) < 2 {
		return nil, ErrTooFewStops
	}
	return out, nil
}
