package address

import "strings"

// DefaultSuffixes is the accepted suffix set used when none is configured.
var DefaultSuffixes = []string{".com", ".ru", ".net"}

// Validator filters candidate addresses against an accepted suffix set.
// A Validator is read-only after construction and safe for concurrent use.
type Validator struct {
	suffixes []string
}

// NewValidator creates a Validator accepting addresses that end with one of
// the given suffixes (case-insensitive). Blank suffixes are ignored. With no
// usable suffixes, DefaultSuffixes is used.
func NewValidator(suffixes ...string) *Validator {
	normalized := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		s = Normalize(s)
		if s != "" {
			normalized = append(normalized, s)
		}
	}
	if len(normalized) == 0 {
		normalized = append(normalized, DefaultSuffixes...)
	}
	return &Validator{suffixes: normalized}
}

// Suffixes returns a copy of the accepted suffixes.
func (v *Validator) Suffixes() []string {
	out := make([]string, len(v.suffixes))
	copy(out, v.suffixes)
	return out
}

// Valid reports whether s is non-blank, contains an @ and ends with an
// accepted suffix.
func (v *Validator) Valid(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if !strings.Contains(trimmed, "@") {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, suffix := range v.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// Filter returns the trimmed entries of addresses that pass Valid, in their
// original order and casing. Invalid entries are dropped without error.
func (v *Validator) Filter(addresses []string) []string {
	result := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if v.Valid(a) {
			result = append(result, strings.TrimSpace(a))
		}
	}
	return result
}

var defaultValidator = NewValidator()

// FilterValid filters addresses with the default suffix set.
func FilterValid(addresses []string) []string {
	return defaultValidator.Filter(addresses)
}
