// Package validation holds input validation helpers shared by services
// and handlers.
package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// Username checks the basic shape of a username: trimmed, length bounds,
// no internal whitespace.
func Username(username string) bool {
	if username != strings.TrimSpace(username) {
		return false
	}
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return false
	}
	return !strings.ContainsAny(username, " \t\n")
}

// Password enforces the minimum password length.
func Password(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// Theme checks a theme preference value.
func Theme(theme string) bool {
	return theme == "light" || theme == "dark"
}
