// Package businessid normalizes Finnish business identifiers (Y-tunnus).
package businessid

import (
	"regexp"
	"strings"
)

// rawLength is the number of digits in a business identifier without its separator.
const rawLength = 8

var canonicalPattern = regexp.MustCompile(`^\d{7}-\d$`)

// separatorStripper removes the characters users commonly type between digits.
var separatorStripper = strings.NewReplacer("-", "", " ", "")

// Normalize reformats input into the registry's canonical NNNNNNN-N form when,
// after removing hyphens and spaces, it consists of exactly eight digits.
// Any other input is returned unchanged, including its original separators.
func Normalize(input string) string {
	raw := separatorStripper.Replace(input)
	if len(raw) != rawLength || !isDigits(raw) {
		return input
	}
	return raw[:rawLength-1] + "-" + raw[rawLength-1:]
}

// IsCanonical reports whether s is already in NNNNNNN-N form.
func IsCanonical(s string) bool {
	return canonicalPattern.MatchString(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
