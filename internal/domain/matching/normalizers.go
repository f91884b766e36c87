// Package matching implements the deterministic signals used to detect duplicate customers.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone keeps only the digits of a phone number.
// Country-code and trunk-prefix equivalence is not attempted.
func NormalizePhone(s string) string {
	var result strings.Builder
	for _, r := range width.Narrow.String(s) {
		if r >= '0' && r <= '9' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// NormalizeLineID trims a LINE id. LINE ids are case-sensitive.
func NormalizeLineID(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeName lower-cases a person's name and collapses whitespace runs
// into a single ASCII space. Full-width and half-width forms (including the
// ideographic space U+3000) are folded to one representation first.
func NormalizeName(s string) string {
	s = width.Fold.String(norm.NFKC.String(s))
	s = strings.ToLower(s)

	var result strings.Builder
	prevSpace := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				result.WriteRune(' ')
				prevSpace = true
			}

			continue
		}
		result.WriteRune(r)
		prevSpace = false
	}

	return strings.TrimRight(result.String(), " ")
}
