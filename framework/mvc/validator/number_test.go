package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-xmf/framework/mvc/validator"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func number(params validator.Params) *validator.Number {
	n := validator.NewNumber()
	if params != nil {
		n.Initialize(params)
	}
	return n
}

// ── Number ───────────────────────────────────────────────────────────────────

func TestNumber_Range(t *testing.T) {
	n := number(validator.Params{"min": 1, "max": 10})

	tests := []struct {
		name    string
		in      any
		wantOK  bool
		wantMsg string
	}{
		{"inside", "7", true, ""},
		{"lower edge", "1", true, ""},
		{"upper edge", "10", true, ""},
		{"float inside", "2.5", true, ""},
		{"not numeric", "abc", false, "Value is not numeric"},
		{"too high", "15", false, "Value is too high"},
		{"too low", "0", false, "Value is too low"},
		{"negative", "-3", false, "Value is too low"},
		{"junk around digits", " 7a ", true, ""},
		{"empty", "", false, "Value is not numeric"},
		{"nil", nil, false, "Value is not numeric"},
		{"int value", 5, true, ""},
		{"list", []string{"1", "2"}, false, "Value is not numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, msg := n.Execute(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestNumber_StripNormalizes(t *testing.T) {
	n := number(validator.Params{"min": 1, "max": 10})

	out, ok, _ := n.Execute(" 7a ")
	assert.True(t, ok)
	assert.Equal(t, "7", out)

	out, _, _ = n.Execute("$1,250.50")
	assert.Equal(t, "1250.5", out)
}

func TestNumber_NoStrip(t *testing.T) {
	n := number(validator.Params{"strip": false})

	out, ok, msg := n.Execute(" 7a ")
	assert.False(t, ok)
	assert.Equal(t, "Value is not numeric", msg)
	assert.Equal(t, " 7a ", out)

	_, ok, _ = n.Execute("1e3")
	assert.True(t, ok)
}

func TestNumber_UnboundedNeverRejectsForBounds(t *testing.T) {
	n := number(nil)
	for _, v := range []string{"-1000000", "-1", "0", "1", "99999999999"} {
		_, ok, msg := n.Execute(v)
		assert.True(t, ok, "value %s: %s", v, msg)
	}

	// nil clears a bound set earlier
	n.Initialize(validator.Params{"max": 5})
	_, ok, _ := n.Execute("6")
	assert.False(t, ok)
	n.Initialize(validator.Params{"max": nil})
	_, ok, _ = n.Execute("6")
	assert.True(t, ok)
}

func TestNumber_StripIsIdempotent(t *testing.T) {
	n := number(validator.Params{"min": 0, "max": 100})
	inputs := []string{" 42 ", "4x2", "12.50 EUR", "-5 degrees", "abc", "99.9%", "1-2", "--"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			cleaned := validator.StripNumber(in)
			_, okRaw, msgRaw := n.Execute(in)
			_, okClean, msgClean := n.Execute(cleaned)
			assert.Equal(t, okClean, okRaw)
			assert.Equal(t, msgClean, msgRaw)
			assert.Equal(t, cleaned, validator.StripNumber(cleaned))
		})
	}
}

func TestNumber_CustomMessages(t *testing.T) {
	n := number(validator.Params{"max": 3, "max_error": "Too many"})
	_, _, msg := n.Execute("4")
	assert.Equal(t, "Too many", msg)
	assert.Empty(t, n.ErrorMessage())

	n.Initialize(validator.Params{"message": "Pick 1 to 3"})
	assert.Equal(t, "Pick 1 to 3", n.ErrorMessage())
}

func TestNumber_StringBounds(t *testing.T) {
	n := number(validator.Params{"min": "2", "max": "4"})
	_, ok, _ := n.Execute("3")
	assert.True(t, ok)
	_, ok, msg := n.Execute("5")
	assert.False(t, ok)
	assert.Equal(t, "Value is too high", msg)
}

// ── StripNumber / IsNumeric ──────────────────────────────────────────────────

func TestStripNumber(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"abc":       "",
		" 7a ":      "7",
		"3.50":      "3.5",
		"-12":       "-12",
		"1-2":       "1",
		"--":        "0",
		"..":        "0",
		"007":       "7",
		"1,000.25$": "1000.25",
	}
	for in, want := range tests {
		assert.Equal(t, want, validator.StripNumber(in), "input %q", in)
	}
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"0", "-1", "+2", "3.", ".5", "1e10", "2.5E-3", " 4 "} {
		assert.True(t, validator.IsNumeric(s), s)
	}
	for _, s := range []string{"", "-", ".", "abc", "1a", "NaN", "Inf", "0x10", "1_000"} {
		assert.False(t, validator.IsNumeric(s), s)
	}
}

func TestNumber_StripFlagAsString(t *testing.T) {
	for _, off := range []string{"no", "off", "false", "0", "NO"} {
		t.Run(off, func(t *testing.T) {
			n := validator.NewNumber()
			n.Initialize(validator.Params{"strip": off, "min": 1})
			_, ok, msg := n.Execute("5x")
			assert.False(t, ok)
			assert.Equal(t, "Value is not numeric", msg)
		})
	}
	for _, on := range []string{"yes", "on", "true", "1"} {
		t.Run(on, func(t *testing.T) {
			n := validator.NewNumber()
			n.Initialize(validator.Params{"strip": on, "min": 1})
			out, ok, _ := n.Execute("5x")
			assert.True(t, ok)
			assert.Equal(t, "5", out)
		})
	}
}
