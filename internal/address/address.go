// Package address provides normalization, validation, splitting and masking
// of email addresses.
package address

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAddress is returned when an address does not contain exactly one @.
var ErrInvalidAddress = errors.New("invalid address")

// maskPrefixLen is the number of login characters kept visible by Mask.
const maskPrefixLen = 2

// Normalize trims surrounding whitespace and lowercases the address.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Split splits an address into its login and domain parts.
// It returns an error wrapping ErrInvalidAddress unless the address
// contains exactly one @ character.
func Split(s string) (string, string, error) {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return parts[0], parts[1], nil
}

// Mask builds the display form of an address from its parts:
// the first two characters of login, then "***@" and the domain.
// Logins shorter than two characters are kept as they are.
//
//	Mask("user", "mail.ru") -> "us***@mail.ru"
//	Mask("u", "mail.ru")    -> "u***@mail.ru"
func Mask(login, domain string) string {
	runes := []rune(login)
	if len(runes) > maskPrefixLen {
		runes = runes[:maskPrefixLen]
	}
	return string(runes) + "***@" + domain
}

// MaskAddress masks a full address for logging. Addresses that cannot be
// split are replaced entirely.
func MaskAddress(s string) string {
	login, domain, err := Split(Normalize(s))
	if err != nil {
		return "***"
	}
	return Mask(login, domain)
}
