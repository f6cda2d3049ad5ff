package utils

import (
	"errors"
	"strings"
)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

var ErrWeakPassword = errors.New("password must be at least 6 characters, include an uppercase letter and a special character")

// ValidatePassword enforces the registration password policy:
// length >= 6, at least one uppercase letter, at least one symbol
// from the fixed punctuation set.
func ValidatePassword(pw string) error {
	if len(pw) < 6 {
		return ErrWeakPassword
	}
	hasUpper := false
	for _, r := range pw {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper || !strings.ContainsAny(pw, passwordSymbols) {
		return ErrWeakPassword
	}
	return nil
}
