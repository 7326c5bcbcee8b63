package classify

import "strings"

// plaidPrimaryMap translates Plaid's personal-finance primary categories into
// the local vocabulary.
var plaidPrimaryMap = map[string]string{
	"FOOD_AND_DRINK":            "dining",
	"GENERAL_MERCHANDISE":       "shopping",
	"MEDICAL":                   "healthcare",
	"TRANSPORTATION":            "transportation",
	"TRAVEL":                    "travel",
	"RENT_AND_UTILITIES":        "rent",
	"ENTERTAINMENT":             "entertainment",
	"GENERAL_SERVICES":          "utilities",
	"INCOME":                    "income",
	"TRANSFER_IN":               "income",
	"TRANSFER_OUT":              "other",
	"LOAN_PAYMENTS":             "other",
	"BANK_FEES":                 "other",
	"GAS_STATIONS":              "transportation",
	"GROCERIES":                 "groceries",
	"SUBSCRIPTIONS":             "subscriptions",
	"INVESTMENT":                "investment",
	"GOVERNMENT_AND_NON_PROFIT": "other",
	"HOME_IMPROVEMENT":          "other",
	"PERSONAL_CARE":             "other",
}

// plaidDetailedMap translates the detailed categories. A detailed hit also
// fills the primary so the pair stays consistent.
var plaidDetailedMap = map[string]string{
	"RESTAURANTS":       "dining",
	"FAST_FOOD":         "dining",
	"COFFEE_SHOPS":      "dining",
	"FOOD_DELIVERY":     "dining",
	"ALCOHOL_AND_BARS":  "dining",
	"GROCERIES":         "groceries",
	"SUPERMARKETS":      "groceries",
	"GAS_STATIONS":      "transportation",
	"PUBLIC_TRANSPORTATION": "transportation",
	"TAXI":       "transportation",
	"RIDE_SHARE": "transportation",
	"PARKING":    "transportation",
	"TOLLS":      "transportation",
	"GENERAL_MERCHANDISE":      "shopping",
	"ONLINE_MARKETPLACES":      "shopping",
	"DEPARTMENT_STORES":        "shopping",
	"CLOTHING_AND_ACCESSORIES": "shopping",
	"ELECTRONICS":              "shopping",
	"ENTERTAINMENT":            "entertainment",
	"MOVIES_AND_DVDS":          "entertainment",
	"GAMES_AND_GAMING":         "entertainment",
	"SPORTS_AND_RECREATION":    "entertainment",
	"MUSIC_AND_AUDIO":          "subscriptions",
	"SOFTWARE_SUBSCRIPTIONS":   "subscriptions",
	"STREAMING_SERVICES":       "subscriptions",
	"MUSIC_STREAMING":          "subscriptions",
	"NEWS_SUBSCRIPTIONS":       "subscriptions",
	"GAMING_SUBSCRIPTIONS":     "subscriptions",
	"HOTELS_AND_ACCOMMODATIONS": "travel",
	"AIR_TRAVEL":                "travel",
	"RENTAL_CARS":               "travel",
	"TRAVEL_AGENCIES":           "travel",
	"RENT":                      "rent",
	"UTILITIES":                 "utilities",
	"ELECTRICITY":               "utilities",
	"WATER":                     "utilities",
	"GAS_AND_HEATING":           "utilities",
	"INTERNET_AND_PHONE":        "utilities",
	"CABLE":                     "utilities",
	"SALARY":            "income",
	"PAYROLL":           "income",
	"DIVIDENDS":         "income",
	"INTEREST_EARNED":   "income",
	"GIG_ECONOMY":       "income",
	"RENTAL_INCOME":     "income",
	"INVESTMENT_INCOME": "income",
	"PRIMARY_CARE":      "healthcare",
	"DENTAL_CARE":       "healthcare",
	"PHARMACIES":        "healthcare",
	"HOSPITALS":         "healthcare",
	"HEALTH_INSURANCE":  "healthcare",
	"CD_DEPOSIT":             "investment",
	"CERTIFICATE_OF_DEPOSIT": "investment",
	"STOCKS":                 "investment",
	"BONDS":                  "investment",
	"MUTUAL_FUNDS":           "investment",
	"ETF":                    "investment",
	"BROKERAGE":              "investment",
	"RETIREMENT":             "investment",
}

var investmentTextTokens = []string{
	"cd deposit", "certificate of deposit", "cd maturity", "cd interest",
	" stock", " bond", "mutual fund", " etf", "401k", " ira",
	"retirement", "brokerage",
}

// MapPlaidCategory converts a Plaid category pair into the local vocabulary,
// with merchant/description text breaking ties for unlabeled records. The
// detailed category is consulted first because it is the more specific of the
// two.
func MapPlaidCategory(primary, detailed, merchant, description string) (string, string) {
	var mappedPrimary, mappedDetailed string

	if detailed != "" {
		if m, ok := plaidDetailedMap[strings.ToUpper(detailed)]; ok {
			mappedDetailed = m
			mappedPrimary = m
		}
	}
	if mappedPrimary == "" && primary != "" {
		upper := strings.ToUpper(primary)
		if upper == "UNKNOWN_CATEGORY" {
			mappedPrimary = "other"
		} else if m, ok := plaidPrimaryMap[upper]; ok {
			mappedPrimary = m
		} else {
			// unmapped labels pass through untouched
			mappedPrimary = primary
		}
	}

	text := strings.ToLower(strings.TrimSpace(merchant + " " + description))

	// CD deposits and brokerage flows masquerade as entertainment in some
	// feeds, so investment detection runs before the merchant buckets.
	if containsAny(text, investmentTextTokens...) {
		mappedDetailed = "investment"
		if mappedPrimary == "" || mappedPrimary == "entertainment" {
			mappedPrimary = "investment"
		}
	}

	if mappedDetailed == "" {
		switch {
		case containsAny(text, "mcdonald", "starbucks", "kfc", "burger", "pizza",
			"coffee", "restaurant", "dining"):
			mappedDetailed = "dining"
		case containsAny(text, "walmart", "target", "kroger", "supermarket", "grocer"):
			mappedDetailed = "groceries"
		case containsAny(text, "uber", "lyft", "taxi", "gas", "fuel"):
			mappedDetailed = "transportation"
		case containsAny(text, "netflix", "spotify", "subscription", "monthly", "annual"):
			mappedDetailed = "subscriptions"
		}
	}

	if mappedPrimary == "" {
		mappedPrimary = "other"
	}
	if mappedDetailed == "" {
		mappedDetailed = mappedPrimary
	}
	return mappedPrimary, mappedDetailed
}
