// Package textproc turns raw user text into comparable token sequences:
// accent and case folding, tokenization, spell correction against a known
// vocabulary, and light Portuguese lemmatization.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold trims, lowercases and strips diacritics, so "  História " becomes
// "historia" and "NÃO" becomes "nao".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
