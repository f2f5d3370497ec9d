package service

import (
	"regexp"
	"strings"
	"unicode"
)

// Free-text client names vary in honorifics, punctuation and suffix
// conventions; matching collapses those variants only. Prefix/suffix
// stripping plus whitespace collapsing — no interior edits, so genuinely
// distinct names never merge.
var (
	honorificRe = regexp.MustCompile(`^(?:mr|mrs|ms|miss|dr|prof|sr|jr)\.?\s+`)
	suffixRe    = regexp.MustCompile(`\s+(?:ltd|limited|pvt|private|inc|incorporated|llp|llc)\.?$`)
	punctRunRe  = regexp.MustCompile(`[.\s]+`)
)

// NormalizeCNR strips hyphens, slashes and whitespace and uppercases the
// rest. "GJHC-24-053644-2017" -> "GJHC240536442017". Idempotent.
func NormalizeCNR(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r == '-' || r == '/' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// NormalizeClientName canonicalizes a free-text name for lookup:
// lowercase, drop one leading honorific, collapse period/space runs,
// "&" -> "and", drop trailing corporate suffixes.
// "ABC & Co. Pvt. Ltd." -> "abc and co".
func NormalizeClientName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = honorificRe.ReplaceAllString(s, "")
	s = punctRunRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.TrimSpace(s)
	// "Pvt. Ltd." style chains need more than one pass
	for {
		t := suffixRe.ReplaceAllString(s, "")
		if t == s {
			break
		}
		s = t
	}
	return strings.TrimSpace(s)
}
