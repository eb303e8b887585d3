package validator

import (
	"net/mail"
	"strings"
)

// Email checks that a value is a single bare RFC 5322 address.
// Display-name forms such as "Alice <a@example.com>" are rejected.
type Email struct {
	Base
}

// NewEmail returns an Email validator with its defaults.
func NewEmail() *Email {
	e := &Email{}
	e.Defaults(Params{
		"email_error": "Value is not a valid email address",
	})
	return e
}

// Execute implements Validator.
func (e *Email) Execute(value any) (any, bool, string) {
	str, ok := scalar(value)
	if !ok {
		return value, false, e.String("email_error", "")
	}
	str = strings.TrimSpace(str)

	addr, err := mail.ParseAddress(str)
	if err != nil || addr.Address != str {
		return str, false, e.String("email_error", "")
	}
	return str, true, ""
}
