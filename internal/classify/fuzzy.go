package classify

import (
	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// FuzzyMatch is the best approximate hit against the known-merchant keys.
type FuzzyMatch struct {
	Key   string
	Score float64
}

const fuzzyThreshold = 0.50

// FuzzyMatcher scores candidate text against merchant-index keys using a
// blend of Jaro-Winkler, Levenshtein ratio and token-set overlap.
type FuzzyMatcher struct{}

// FindBestMatch returns the highest-scoring key at or above the accept
// threshold, or nil when nothing comes close.
func (FuzzyMatcher) FindBestMatch(candidate string, keys []string) *FuzzyMatch {
	cand := normalizeForMatching(candidate)
	if cand == "" {
		return nil
	}
	candTokens := tokenSet(cand)

	var best *FuzzyMatch
	for _, key := range keys {
		k := normalizeForMatching(key)
		if k == "" {
			continue
		}
		score := similarity(cand, k, candTokens)
		if score < fuzzyThreshold {
			continue
		}
		if best == nil || score > best.Score {
			best = &FuzzyMatch{Key: key, Score: score}
		}
	}
	return best
}

// similarity blends three measures: Jaro-Winkler (0.4), Levenshtein ratio
// (0.3) and token Jaccard (0.3). A full token-subset hit (every token of the
// shorter name present in the longer) floors the score at 0.75 so multi-word
// brands survive noisy surroundings.
func similarity(a, b string, aTokens map[string]bool) float64 {
	if a == b {
		return 1.0
	}
	jw := smetrics.JaroWinkler(a, b, 0.7, 4)
	lev := levenshteinRatio(a, b)
	bTokens := tokenSet(b)
	jac := jaccard(aTokens, bTokens)

	score := jw*0.4 + lev*0.3 + jac*0.3
	if tokenSubset(aTokens, bTokens) || tokenSubset(bTokens, aTokens) {
		if score < 0.75 {
			score = 0.75
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func levenshteinRatio(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(d)/float64(maxLen)
}

func tokenSet(s string) map[string]bool {
	out := make(map[string]bool)
	for _, t := range tokenize(s) {
		out[t] = true
	}
	return out
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if b[t] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// tokenSubset reports whether every token of sub appears in super.
func tokenSubset(sub, super map[string]bool) bool {
	if len(sub) == 0 {
		return false
	}
	for t := range sub {
		if !super[t] {
			return false
		}
	}
	return true
}
