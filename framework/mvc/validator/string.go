package validator

import (
	"strings"
	"unicode/utf8"
)

// String checks the length of a text value, counted in runes.
//
// Params:
//   - min, max      optional length bounds
//   - trim          trim surrounding whitespace first (default false)
//   - min_error     "Value is too short"
//   - max_error     "Value is too long"
//   - string_error  "Value is not a string"
type String struct {
	Base
}

// NewString returns a String validator with its defaults.
func NewString() *String {
	s := &String{}
	s.Defaults(Params{
		"min":          nil,
		"max":          nil,
		"trim":         false,
		"min_error":    "Value is too short",
		"max_error":    "Value is too long",
		"string_error": "Value is not a string",
	})
	return s
}

// Execute implements Validator.
func (s *String) Execute(value any) (any, bool, string) {
	str, ok := scalar(value)
	if !ok {
		return value, false, s.Base.String("string_error", "")
	}
	if s.Bool("trim", false) {
		str = strings.TrimSpace(str)
	}

	l := float64(utf8.RuneCountInString(str))
	if lo, ok := s.Float("min"); ok && l < lo {
		return str, false, s.Base.String("min_error", "")
	}
	if hi, ok := s.Float("max"); ok && l > hi {
		return str, false, s.Base.String("max_error", "")
	}
	return str, true, ""
}
