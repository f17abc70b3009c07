package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation folds apostrophe variants to ' and dash variants to a space,
// and drops periods
var punctuation = strings.NewReplacer(
	"\u2018", "'",
	"\u2019", "'",
	"`", "'",
	"-", " ",
	"\u2010", " ",
	"\u2013", " ",
	"\u2014", " ",
	".", "",
)

// Normalize folds a name into its comparison key: lowercase, no diacritics,
// canonical apostrophes, dashes as spaces, no periods, single spaces, trimmed.
// The key stays decomposed (NFD) so Normalize(Normalize(s)) == Normalize(s)
// for every s.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = stripMarks(s)
	s = punctuation.Replace(s)
	// Dropping a period can leave combining marks out of canonical order
	s = norm.NFD.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// stripMarks decomposes to NFD and removes nonspacing marks
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
