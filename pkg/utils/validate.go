package utils

import "regexp"

// One @, no whitespace, at least one dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s looks like a deliverable address. This is the
// same loose shape check the contact form applies in the browser; it is not
// a full RFC 5322 parser.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
