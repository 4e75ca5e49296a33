package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ShowSlug converts a free-form show title into the lowercase, dash-separated
// slug used in show page URLs. Diacritics are stripped, apostrophes dropped,
// and any other run of non-alphanumeric characters becomes a single dash.
// Slugs pass through unchanged.
func ShowSlug(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, name)
	if err != nil {
		folded = name
	}
	folded = cases.Lower(language.Und).String(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '\'' || r == '’':
		default:
			pendingDash = true
		}
	}
	return b.String()
}
