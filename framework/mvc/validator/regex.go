package validator

import "regexp"

// Regex checks a value against a regular expression.
//
// Params:
//   - pattern        RE2 expression; an invalid or empty pattern fails every value
//   - match          true: value must match; false: value must not match (default true)
//   - pattern_error  "Value is invalid"
type Regex struct {
	Base
	re      *regexp.Regexp
	compErr error
}

// NewRegex returns a Regex validator with its defaults.
func NewRegex() *Regex {
	r := &Regex{}
	r.Defaults(Params{
		"pattern":       "",
		"match":         true,
		"pattern_error": "Value is invalid",
	})
	return r
}

// Initialize implements Validator and compiles the pattern once.
func (r *Regex) Initialize(params Params) {
	r.Base.Initialize(params)
	r.re, r.compErr = nil, nil
	if p := r.String("pattern", ""); p != "" {
		r.re, r.compErr = regexp.Compile(p)
	}
}

// Execute implements Validator.
func (r *Regex) Execute(value any) (any, bool, string) {
	str, ok := scalar(value)
	if !ok || r.re == nil || r.compErr != nil {
		return value, false, r.String("pattern_error", "")
	}
	if r.re.MatchString(str) != r.Bool("match", true) {
		return str, false, r.String("pattern_error", "")
	}
	return str, true, ""
}
