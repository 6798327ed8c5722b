package feedback

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]+`)
	multiDotRe   = regexp.MustCompile(`\.{3,}`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
	bulletRe     = regexp.MustCompile(`[•●▪︎◆◇■□▶►➤➔→]+`)

	typographic = strings.NewReplacer(
		"’", "'", "‘", "'",
		"“", `"`, "”", `"`,
		"–", "-", "—", "-",
	)
)

// SanitizeText reduces s to plain ASCII prose. Typographic quotes and dashes
// become their ASCII forms, bullets and other non-ASCII runes are dropped,
// runs of dots collapse to "..." and whitespace to a single space. When
// maxLen > 0 the result is cut at the last word boundary inside maxLen and
// suffixed with "...".
func SanitizeText(s string, maxLen int) string {
	t := strings.TrimSpace(s)
	t = typographic.Replace(t)
	// NFKC folds compatibility forms such as ligatures and full-width letters
	// into ASCII before the non-ASCII sweep.
	t = norm.NFKC.String(t)
	t = bulletRe.ReplaceAllString(t, "")
	t = nonASCIIRe.ReplaceAllString(t, "")
	t = multiDotRe.ReplaceAllString(t, "...")
	t = strings.TrimSpace(multiSpaceRe.ReplaceAllString(t, " "))

	if maxLen > 0 && len(t) > maxLen {
		cut := t[:maxLen]
		if i := strings.LastIndex(cut, " "); i >= 0 {
			cut = cut[:i]
		}
		t = strings.TrimSpace(strings.TrimSpace(cut) + "...")
	}
	return t
}

// HasSpecialChars reports whether text carries characters SanitizeText would drop.
func HasSpecialChars(text string) bool {
	return nonASCIIRe.MatchString(text) || bulletRe.MatchString(text)
}

// IsBlank reports whether text has no visible content.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// CountWords counts whitespace separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
