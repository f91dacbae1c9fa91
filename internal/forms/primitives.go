package forms

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const DefaultPasswordMin = 6

// Messages shared by the field checks and the struct validator.
const (
	EmailInvalid     = "Please enter a valid email address"
	ConfirmRequired  = "Please confirm your password"
	PasswordMismatch = "Passwords do not match"
)

func requiredMessage(field string) string { return field + " is required" }

func lettersMessage(field string) string { return field + " must contain only letters" }

func minLengthMessage(field string, n int) string {
	return fmt.Sprintf("%s must be at least %d characters long", field, n)
}

// ValidName accepts letters, whitespace, hyphens and apostrophes, and
// rejects blank input.
func ValidName(s string) bool {
	return nameRe.MatchString(s) && strings.TrimSpace(s) != ""
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// The field checks below return "" for a valid value, otherwise the message
// shown under the field.

func Name(value, field string) string {
	if field == "" {
		field = "This field"
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return requiredMessage(field)
	}
	if !ValidName(value) {
		return lettersMessage(field)
	}
	return ""
}

func Email(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return requiredMessage("Email address")
	}
	if !ValidEmail(value) {
		return EmailInvalid
	}
	return ""
}

func Password(value string, min int) string {
	if min <= 0 {
		min = DefaultPasswordMin
	}
	if value == "" {
		return requiredMessage("Password")
	}
	if len([]rune(value)) < min {
		return minLengthMessage("Password", min)
	}
	return ""
}

func ConfirmPassword(value, original string) string {
	if value == "" {
		return ConfirmRequired
	}
	if value != original {
		return PasswordMismatch
	}
	return ""
}

func Message(value string) string {
	if strings.TrimSpace(value) == "" {
		return requiredMessage("Message")
	}
	return ""
}
