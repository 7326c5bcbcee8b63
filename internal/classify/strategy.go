package classify

import "strings"

// Strategy is one category detector over normalized merchant/description
// text. raw is the untouched merchant string for case-sensitive POS markers.
// An empty return means no match; the chain moves on.
type Strategy struct {
	Name   string
	Detect func(merchant, desc, raw string) string
}

// DefaultStrategies returns the built-in detectors in registration order.
// Order is load-bearing: narrower rules (costco gas, airport carts, parking
// services) live ahead of the superset rules that would shadow them.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "groceries", Detect: detectGroceries},
		{Name: "dining", Detect: detectDining},
		{Name: "utilities", Detect: detectUtilities},
		{Name: "transportation", Detect: detectTransportation},
		{Name: "health", Detect: detectHealth},
		{Name: "tech", Detect: detectTech},
		{Name: "travel", Detect: detectTravel},
		{Name: "healthcare", Detect: detectHealthcare},
		{Name: "shopping", Detect: detectShopping},
		{Name: "pet", Detect: detectPet},
		{Name: "charity", Detect: detectCharity},
	}
}

// runStrategies evaluates the chain; the first non-empty result wins and no
// strategy sees another's output.
func runStrategies(strategies []Strategy, merchant, desc, raw string) (category, name string) {
	for _, s := range strategies {
		if cat := s.Detect(merchant, desc, raw); cat != "" {
			return cat, s.Name
		}
	}
	return "", ""
}

// ContainsStrategy builds a user-configured substring rule. These run after
// the built-in chain so they can only fill gaps, not shadow curated rules.
func ContainsStrategy(category string, contains []string) Strategy {
	needles := make([]string, 0, len(contains))
	for _, n := range contains {
		if n = Normalize(n); n != "" {
			needles = append(needles, n)
		}
	}
	category = Normalize(category)
	return Strategy{
		Name: "custom:" + category,
		Detect: func(merchant, desc, _ string) string {
			if either(merchant, desc, needles...) {
				return category
			}
			return ""
		},
	}
}

// either reports whether any needle appears in merchant or description.
func either(merchant, desc string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(merchant, n) || strings.Contains(desc, n) {
			return true
		}
	}
	return false
}
