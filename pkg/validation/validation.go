// Package validation provides field-scoped input validation for form
// submissions. A failed check produces a per-field human-readable message
// rather than an error value; callers inspect the Errors map to block the
// submission and surface messages, so validation never aborts a request
// with a fault.
package validation

import (
	"net/mail"
	"regexp"
	"unicode/utf8"
)

// phoneRe matches an international phone number: a plus sign followed by
// 10 to 15 digits.
var phoneRe = regexp.MustCompile(`^\+\d{10,15}$`)

// Errors maps a field name to its validation message. An empty map means
// the input passed every rule.
type Errors map[string]string

// Ok reports whether no rule failed.
func (e Errors) Ok() bool { return len(e) == 0 }

// Set records a message for field unless one is already present, so the
// first failing rule for a field wins.
func (e Errors) Set(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Length checks that value is between min and max runes long.
func (e Errors) Length(field, value string, min, max int, tooShort, tooLong string) {
	n := utf8.RuneCountInString(value)
	if n < min {
		e.Set(field, tooShort)
		return
	}
	if n > max {
		e.Set(field, tooLong)
	}
}

// OptionalLength applies Length only when value is non-empty.
func (e Errors) OptionalLength(field, value string, min, max int, tooShort, tooLong string) {
	if value == "" {
		return
	}
	e.Length(field, value, min, max, tooShort, tooLong)
}

// Email checks value against standard address syntax.
func (e Errors) Email(field, value, message string) {
	if _, err := mail.ParseAddress(value); err != nil {
		e.Set(field, message)
	}
}

// Phone checks value against the "+" followed by 10-15 digits format.
func (e Errors) Phone(field, value, message string) {
	if !phoneRe.MatchString(value) {
		e.Set(field, message)
	}
}

// True checks that a consent-style flag is exactly true. False and absent
// are both failures, never defaults.
func (e Errors) True(field string, value bool, message string) {
	if !value {
		e.Set(field, message)
	}
}

// Required checks that value is non-empty.
func (e Errors) Required(field, value, message string) {
	if value == "" {
		e.Set(field, message)
	}
}
