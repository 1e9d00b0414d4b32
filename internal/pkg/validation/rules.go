package validation

import (
	"strings"
)

// IsMinimalValidEmail reports whether an email passes the minimal syntax
// rule used at registration: non-blank after trimming and containing an
// "@" that is neither the first nor the last character.
func IsMinimalValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// IsBlank reports whether a string is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
