package classify

import "strings"

var usGroceryStores = []string{
	"whole foods", "wholefoods", "wf ", "trader joe", "traderjoe", "kroger",
	"albertsons", "publix", "wegmans", "h-e-b", "heb", "stop & shop", "stopandshop",
	"giant eagle", "gianteagle", "meijer", "food lion", "foodlion",
	"ralphs", "vons", "fred meyer", "fredmeyer", "fred-meyer", "smiths", "king soopers",
	"harris teeter", "harristeeter", "sprouts", "sprouts farmers market",
	"aldi", "lidl", "costco", "sam's club", "samsclub", "bj's", "bjs",
	"target", "walmart", "walmart supercenter", "supercenter",
}

var indianGroceryStores = []string{
	"indian supermarket", "indian store", "indian market", "indian grocery",
	"patel brothers", "patelbrothers", "apna bazaar", "apnabazaar",
	"namaste plaza", "namasteplaza", "bombay bazaar", "bombaybazaar",
	"india gate", "indiagate", "spice bazaar", "spicebazaar",
}

func detectGroceries(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	// Lenient safeway match: store numbers ("SAFEWAY #1444") survive it.
	if strings.Contains(merchant, "safeway") {
		return "groceries"
	}
	if containsAny(merchant, "pcc", "pcc natural markets", "pcc community markets") {
		return "groceries"
	}
	if containsAny(merchant, "amazon fresh", "amazonfresh") ||
		(strings.Contains(merchant, "amazon") && containsAny(desc, "fresh", "grocery")) {
		return "groceries"
	}
	if either(merchant, desc, "qfc", "quality food centers", "chefstore", "chef store",
		"town & country", "town and country", "town&country", "mayuri",
		"meet fresh", "meetfresh") {
		return "groceries"
	}
	// pantry/market implies groceries unless it is a parking lot.
	if containsAny(merchant, "pantry", "market") &&
		!strings.Contains(merchant, "parking") && !strings.Contains(desc, "parking") {
		return "groceries"
	}
	if either(merchant, desc, "sunny honey", "sunnyhoney") || containsAny(merchant, "dk market", "dkmarket") {
		return "groceries"
	}
	// costco gas must beat the general costco rule below.
	if either(merchant, desc, "costco gas", "costcogas") {
		return "transportation"
	}
	// "COSTCO WHSE" is a store location, not the payroll-issuing corporation.
	if either(merchant, desc, "costco whse", "costcowhse", "costco warehouse", "costcowarehouse") {
		return "groceries"
	}
	if either(merchant, desc, "wmt plus", "wmtplus", "walmart plus", "walmartplus") {
		return "groceries"
	}
	for _, store := range usGroceryStores {
		if strings.Contains(merchant, store) {
			return "groceries"
		}
	}
	for _, store := range indianGroceryStores {
		if strings.Contains(merchant, store) || strings.Contains(desc, store) {
			return "groceries"
		}
	}
	if containsAny(merchant, "supermarket", "super market", "grocery", "grocery store",
		"food market", "foodmart", "hypermarket", "hyper market") {
		return "groceries"
	}
	return ""
}
