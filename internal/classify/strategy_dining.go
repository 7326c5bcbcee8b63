package classify

import "strings"

var fastFoodChains = []string{
	"mcdonald", "mcdonalds", "burger king", "burgerking", "wendy's", "wendys",
	"taco bell", "tacobell", "kfc", "pizza hut", "pizzahut", "domino's", "dominos",
	"papa john's", "papajohns", "little caesar", "littlecaesar", "papa murphy", "papamurphy",
	"dunkin", "dunkin donuts", "dunkindonuts", "tim hortons", "timhortons",
	"panera", "panera bread", "panerabread", "jamba juice", "jambajuice",
	"smoothie king", "smoothieking", "qdoba", "moe's", "moes", "baja fresh", "bajafresh",
}

var specificRestaurants = []string{
	"daeho", "tutta bella", "tuttabella", "simply indian restaur",
	"skills rainbow room", "kyurmaen", "kyuramen", "deep dive", "deepdive",
	"messina", "supreme dumplings", "supremedumplings", "cucina venti", "cucinaventi",
	"desi dhaba", "desidhaba", "mendocino farms", "mendocinofarms", "medocino farms",
	"laughing monk", "laughingmonk", "indian sizzler", "indiansizzler",
	"shana thai", "shanathai", "tpd", "pike place market", "pikeplace market",
	"kabob hut", "kabobhut", "insomnia cookie", "banaras", "resy",
	"maximilian", "maxmillen", "il fornaio", "ilfornaio", "wingstop",
	"canam pizza", "canampizza",
}

var foodKeywords = []string{
	"dumpling", "burger", "fast food", "fastfood", "grill", "thai", "dhaba",
	"brewing", "brewery", "brew pub", "brewpub", "pizza", "pizzeria",
	"kitchen", "sandwich",
}

// posMarkers are point-of-sale processor prefixes that reliably imply dining
// regardless of the merchant's own name. Checked against the raw merchant
// too since the asterisk forms are case-sensitive conventions.
var posMarkers = []string{"tst*", "tst ", "sq*", "sq ", "rbl*", "rbl "}

func detectDining(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	if either(merchant, desc, "subway", "panda express", "pandaexpress", "starbucks", "chipotle") {
		return "dining"
	}
	for _, chain := range fastFoodChains {
		if strings.Contains(merchant, chain) || strings.Contains(desc, chain) {
			return "dining"
		}
	}
	// "caffe" covers the Italian spelling (CAFFE Nero).
	if containsAny(merchant, "cafe", "café", "caffe", "cafeteria", "coffee", "espresso", "latte") ||
		containsAny(desc, "cafe", "café", "caffe", "cafeteria") {
		return "dining"
	}
	if either(merchant, desc, "tiffin") {
		return "dining"
	}
	for _, r := range specificRestaurants {
		if strings.Contains(merchant, r) || strings.Contains(desc, r) {
			return "dining"
		}
	}
	rawUpper := strings.ToUpper(raw)
	for _, m := range posMarkers {
		if strings.Contains(merchant, m) || strings.Contains(desc, m) ||
			strings.Contains(rawUpper, strings.ToUpper(m)) {
			return "dining"
		}
	}
	if either(merchant, desc, "toast") || strings.Contains(rawUpper, "TOAST") {
		return "dining"
	}
	if either(merchant, desc, "hms host", "hmshost", "sandwich house", "sandwichhouse") {
		return "dining"
	}
	for _, kw := range foodKeywords {
		if strings.Contains(merchant, kw) || strings.Contains(desc, kw) {
			return "dining"
		}
	}
	if containsAny(merchant, "restaurant", "rest ", "restaur", "diner", "bistro",
		"steakhouse", "pizzeria", "trattoria", "tavern", "pub") ||
		containsAny(desc, "restaurant", "restaur", "dining") {
		return "dining"
	}
	return ""
}
