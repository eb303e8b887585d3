package validator

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonNumericChars = regexp.MustCompile(`[^0-9.\-]+`)
	floatLiteral    = regexp.MustCompile(`-?[0-9]+(\.[0-9]+)?`)
	numericString   = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// Number checks that a value is numeric and, optionally, within bounds.
//
// Params:
//   - min, max      optional bounds; absent or nil means unbounded
//   - strip         remove everything but digits, '.' and '-' first (default true)
//   - min_error     "Value is too low"
//   - max_error     "Value is too high"
//   - number_error  "Value is not numeric"
type Number struct {
	Base
}

// NewNumber returns a Number validator with its defaults.
func NewNumber() *Number {
	n := &Number{}
	n.Defaults(Params{
		"min":          nil,
		"max":          nil,
		"strip":        true,
		"min_error":    "Value is too low",
		"max_error":    "Value is too high",
		"number_error": "Value is not numeric",
	})
	return n
}

// Execute implements Validator.
func (n *Number) Execute(value any) (any, bool, string) {
	s, ok := scalar(value)
	if !ok {
		return value, false, n.String("number_error", "")
	}

	if n.Bool("strip", true) {
		s = StripNumber(s)
	}

	if !IsNumeric(s) {
		return s, false, n.String("number_error", "")
	}

	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)

	if lo, ok := n.Float("min"); ok && f < lo {
		return s, false, n.String("min_error", "")
	}
	if hi, ok := n.Float("max"); ok && f > hi {
		return s, false, n.String("max_error", "")
	}
	return s, true, ""
}

// StripNumber removes every character that is not a digit, '.' or '-' and
// reduces what is left to a clean float literal. An empty result is
// returned as-is; a result without any digits becomes "0".
//
//	StripNumber(" 7a ")    // "7"
//	StripNumber("$1,250.50") // "1250.5"
func StripNumber(s string) string {
	s = nonNumericChars.ReplaceAllString(s, "")
	if s == "" {
		return s
	}
	m := floatLiteral.FindString(s)
	if m == "" {
		return "0"
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return "0"
	}
	return formatFloat(f)
}

// IsNumeric reports whether s is a decimal number, optionally signed, with
// an optional exponent. Surrounding whitespace is allowed.
func IsNumeric(s string) bool {
	return numericString.MatchString(strings.TrimSpace(s))
}
