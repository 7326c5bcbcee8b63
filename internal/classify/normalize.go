package classify

import (
	"regexp"
	"strings"
)

// Normalize lower-cases and trims raw merchant/description text. Every
// downstream component scans the output of this function.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var (
	storeNumberRe = regexp.MustCompile(`#\s*\d+`)
	longDigitsRe  = regexp.MustCompile(`\b\d{4,}\b`)
	punctRe       = regexp.MustCompile(`[^a-z0-9 ]+`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// normalizeForMatching canonicalizes text for fuzzy comparison: leading
// articles, store numbers, long numeric IDs, corporate suffixes and
// punctuation all get stripped so "THE SAFEWAY #1234 INC." and "safeway"
// compare as near-equal.
func normalizeForMatching(s string) string {
	s = Normalize(s)
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			s = s[len(art):]
			break
		}
	}
	s = storeNumberRe.ReplaceAllString(s, " ")
	s = longDigitsRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ".com", " ")
	s = punctRe.ReplaceAllString(s, " ")
	for _, suf := range []string{" inc", " llc", " corp", " co", " ltd"} {
		s = strings.TrimSuffix(strings.TrimSpace(s), suf)
	}
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

// tokenize splits normalized text into whitespace-delimited tokens.
func tokenize(s string) []string {
	return strings.Fields(normalizeForMatching(s))
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// containsWord reports whether w appears in s as a standalone word. Used
// where substring matching is unsafe ("gas" inside "gastropub").
func containsWord(s, w string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], w)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isWordChar(s[i-1])
		afterIdx := i + len(w)
		after := afterIdx >= len(s) || !isWordChar(s[afterIdx])
		if before && after {
			return true
		}
		idx = i + 1
	}
}

// containsAnyWord reports whether any needle appears in s as a standalone
// word.
func containsAnyWord(s string, words ...string) bool {
	for _, w := range words {
		if containsWord(s, w) {
			return true
		}
	}
	return false
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
