package classify

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// mlAdmissionThreshold gates the ML signal before combination. Predictions
// at or below it are discarded entirely.
const mlAdmissionThreshold = 0.3

// combine merges the non-nil signal results into one decision. Weights are
// sign-aware: an income vote on a negative amount is nearly muted, and a
// negative amount can never resolve to income at all.
func combine(results []*DetectionResult, amount *decimal.Decimal) *DetectionResult {
	live := results[:0:0]
	for _, r := range results {
		if r != nil && r.Category != "" {
			live = append(live, r)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}

	neg := amount != nil && amount.IsNegative()
	pos := amount != nil && amount.IsPositive()

	scores := make(map[string]float64, len(live))
	var methods []string
	for _, r := range live {
		w := 0.5
		if r.Method == methodFuzzy && r.Confidence >= 0.85 {
			w = 0.7
		}
		cat := r.Category
		if neg {
			if cat == "income" {
				w *= 0.1
			} else if !expenseCategories[cat] && cat != "investment" {
				w *= 0.8
			}
		} else if pos && cat == "income" {
			w *= 1.2
		}
		scores[cat] += r.Confidence * w
		methods = append(methods, r.Method)
	}

	winner, score := maxScore(scores)
	if neg && winner == "income" {
		delete(scores, "income")
		winner, score = maxScore(scores)
		if winner == "" {
			winner, score = "other", 0.5
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return &DetectionResult{
		Category:   winner,
		Confidence: score,
		Method:     methodCombined,
		Reason:     "combined: " + strings.Join(methods, "+"),
	}
}

func maxScore(scores map[string]float64) (string, float64) {
	cats := make([]string, 0, len(scores))
	for c := range scores {
		cats = append(cats, c)
	}
	// deterministic winner under score ties
	sort.Strings(cats)
	best, bestScore := "", -1.0
	for _, c := range cats {
		if scores[c] > bestScore {
			best, bestScore = c, scores[c]
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestScore
}
