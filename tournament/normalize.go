// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"regexp"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	leadingArticle = regexp.MustCompile(`(?i)^the\s+`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	nonKeyChars    = regexp.MustCompile(`[^a-z0-9_]`)
	lowerCaser     = cases.Lower(language.Und)
)

// NormalizeTitle reduces a title to the key used to order tally rows:
// accents stripped, a leading "The" dropped, whitespace turned into
// underscores, lowercased, and anything outside [a-z0-9_] removed.
//
//	NormalizeTitle("The Grand Budapest Hotel") == "grand_budapest_hotel"
//	NormalizeTitle("Amélie")                   == "amelie"
func NormalizeTitle(title string) string {
	if title == "" {
		return "unknown"
	}

	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		title,
	)
	if err != nil {
		folded = title
	}

	s := leadingArticle.ReplaceAllString(folded, "")
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = lowerCaser.String(s)
	return nonKeyChars.ReplaceAllString(s, "")
}
