// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any non-alphanumeric character.
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9]+`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
)

// Slugify converts a string to a URL-safe slug.
// The slug is the canonical form used in article and tag URLs.
//
//	"Going Concurrent"   → "going-concurrent"
//	"Café_Culture"       → "cafe-culture"
//	"  multi   word "    → "multi-word"
//	"--leading--"        → "leading"
func Slugify(input string) string {
	// Decompose accented characters, then drop the combining marks
	// along with everything else outside ASCII.
	s := norm.NFKD.String(input)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlphanumericRe.ReplaceAllString(s, "-")
	s = multipleDashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	return s
}
