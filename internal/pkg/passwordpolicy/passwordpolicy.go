package passwordpolicy

import "strings"

// SpecialChars is the fixed set of accepted special characters. This is a
// policy constant: changing it changes which passwords are accepted at signup.
const SpecialChars = "!@#$%^&"

// MinLength is the minimum accepted password length.
const MinLength = 8

// Validate checks a candidate password against the signup composition rules
// and returns a human-readable description of every unmet rule, in rule order.
// An empty result means the password is acceptable. All rules are checked
// independently; nothing short-circuits.
func Validate(password string) []string {
	var unmet []string

	if len(password) < MinLength {
		unmet = append(unmet, "at least 8 characters")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		unmet = append(unmet, "one uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		unmet = append(unmet, "one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		unmet = append(unmet, "one number")
	}
	if !strings.ContainsAny(password, SpecialChars) {
		unmet = append(unmet, "one special character ("+SpecialChars+")")
	}

	return unmet
}
