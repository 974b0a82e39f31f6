// Package auth holds the credential-handling leaves of the server: input
// format validation, password hashing, and session-token issuance.
package auth

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/okozlov/accountd/internal/common"
)

// emailRegex accepts a dotted or quoted local part followed by either a
// dotted-label domain or a bracketed IPv4 address. Matching is performed on
// the lowercased input, so comparison is effectively case-insensitive.
var emailRegex = regexp.MustCompile(`^(([^<>()[\]\\.,;:\s@"]+(\.[^<>()[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}))$`)

// passwordSymbols is the fixed set of symbols accepted by the password rules.
const passwordSymbols = "-!@#$%^&*?/;,=+_"

// ValidateEmailFormat checks the shape of an email address. An empty value is
// a missing field, not a format error.
func ValidateEmailFormat(email string) error {
	if email == "" {
		return common.ErrMissingField
	}
	if !emailRegex.MatchString(strings.ToLower(email)) {
		return common.ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePasswordFormat enforces the password strength rules: minimum length
// 8 and at least one lowercase letter, one uppercase letter, one digit, and
// one symbol from passwordSymbols. The checks are independent but any failure
// yields the same composite ErrWeakPassword.
func ValidatePasswordFormat(password string) error {
	ok := len(password) >= 8 &&
		strings.ContainsFunc(password, unicode.IsLower) &&
		strings.ContainsFunc(password, unicode.IsUpper) &&
		strings.ContainsFunc(password, unicode.IsDigit) &&
		strings.ContainsAny(password, passwordSymbols)
	if !ok {
		return common.ErrWeakPassword
	}
	return nil
}
