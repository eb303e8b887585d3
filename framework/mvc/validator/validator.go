package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// ── Contract ─────────────────────────────────────────────────────────────────

// Params is the configuration of a single validator.
// Every variant seeds its own defaults; Initialize overrides them key by key.
type Params map[string]any

// Validator checks (and may normalize) the value of one request parameter.
//
//	v := validator.NewNumber()
//	v.Initialize(validator.Params{"min": 1, "max": 10})
//	clean, ok, msg := v.Execute(" 7a ")   // "7", true, ""
type Validator interface {
	// Initialize merges params over the variant's defaults.
	Initialize(params Params)

	// Execute returns the normalized value, whether it passed and, on
	// failure, the message configured for the check that failed.
	Execute(value any) (normalized any, ok bool, message string)

	// ErrorMessage returns the override message, or "" when none is set.
	// A non-empty override replaces whatever Execute reported.
	ErrorMessage() string
}

// ── Base ─────────────────────────────────────────────────────────────────────

// Base holds the params store shared by all variants.
// Embed it and seed defaults with Defaults() in the constructor.
type Base struct {
	params  Params
	message string
}

// Defaults seeds params that Initialize may later override.
func (b *Base) Defaults(defaults Params) {
	if b.params == nil {
		b.params = make(Params, len(defaults))
	}
	for k, v := range defaults {
		b.params[k] = v
	}
}

// Initialize merges params over the current values.
// The "message" key sets the override error message.
func (b *Base) Initialize(params Params) {
	if b.params == nil {
		b.params = make(Params, len(params))
	}
	for k, v := range params {
		b.params[k] = v
	}
	if msg, ok := params["message"].(string); ok {
		b.message = msg
	}
}

// ErrorMessage returns the override message.
func (b *Base) ErrorMessage() string { return b.message }

// SetErrorMessage sets the override message.
func (b *Base) SetErrorMessage(msg string) { b.message = msg }

// String returns a string param, or fallback when unset or not a string.
func (b *Base) String(key, fallback string) string {
	if s, ok := b.params[key].(string); ok {
		return s
	}
	return fallback
}

// Bool returns a boolean param. Rule files and forms carry booleans as
// strings too: "1", "true", "yes" and "on" are true; "0", "false", "no"
// and "off" are false, in any case.
func (b *Base) Bool(key string, fallback bool) bool {
	switch v := b.params[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "y", "yes", "on":
			return true
		case "0", "f", "false", "n", "no", "off":
			return false
		}
	case int:
		return v != 0
	}
	return fallback
}

// Float returns a numeric param. ok is false when the key is absent or nil,
// which is how variants express "no bound".
func (b *Base) Float(key string) (float64, bool) {
	return toFloat(b.params[key])
}

// ── helpers ──────────────────────────────────────────────────────────────────

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// scalar converts a parameter value into the string a validator inspects.
// nil becomes "" and numbers are formatted; collections are rejected.
func scalar(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	case float64:
		return formatFloat(s), true
	case float32:
		return formatFloat(float64(s)), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(s), true
	}
	return "", false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
