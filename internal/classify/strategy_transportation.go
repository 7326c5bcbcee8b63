package classify

import "strings"

var gasStations = []string{
	"shell", "bp ", "bp.", "exxon", "mobil", "esso",
	"arco", "valero", "citgo", "speedway", "7-eleven", "7eleven",
	"circle k", "circlek", "chevron", "texaco", "phillips 66", "phillips66",
	"conoco", "marathon", "sunoco", "sinclair", "kwik trip", "kwiktrip",
	"kwik sak", "kwiksak", "buc-ee", "bucees",
}

var entertainmentVenues = []string{
	"cinemark", "regal", "carmike", "marcus", "harkins",
	"alamo drafthouse", "alamodrafthouse", "movie theater", "movietheater",
	"cinema", "theater", "theatre", "imax", "escape room", "escaperoom",
	"countdown rooms", "countdownrooms",
}

var streamingServices = []string{
	"netflix", "hulu", "disney+", "disneyplus", "disney",
	"hbo max", "hbomax", "hbo", "paramount+", "paramount plus", "paramount",
	"peacock", "spotify", "apple music", "applemusic",
	"youtube premium", "youtubepremium", "youtube tv", "youtubetv",
	"amazon prime", "amazonprime", "prime video", "primevideo",
	"showtime", "starz", "crunchyroll", "funimation",
}

var examKeywords = []string{
	"aamc", "sat", "toefl", "gre", "gmat", "lsat", "mcat",
	"ap exam", "ib exam", "clep", "praxis", "bar exam",
	"nclex", "usmle", "comlex", "test registration",
	"test fee", "test center", "pearson vue", "prometric",
}

var regionalSchoolTerms = []string{
	"gurukul", "vidyalaya", "shiksha", "pathshala",
	"escuela", "colegio", "universidad",
	"école", "collège", "université",
	"schule", "universität",
	"madrasa", "kuttab", "madrassa",
}

var schoolTypes = []string{
	"middle school", "middleschool", "high school", "highschool",
	"elementary school", "elementary", "secondary school",
	"college", "university", "phd", "ph.d", "doctorate",
	"graduate school", "graduateschool", "school district", "schooldistrict",
}

var educationalMedia = []string{
	"newspaper", "magazine", "journal", "books", "bookstore",
	"book store", "textbook", "text book", "library",
}

var educationKeywords = []string{
	"school", "university", "college", "tuition",
	"reading", "education", "educational", "course", "lesson", "training",
}

func detectTransportation(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	// Airport carts/chairs before anything: "SEATTLEAP" is Seattle Airport,
	// not Seattle Public Utilities.
	if either(merchant, desc, "seattleap", "seattle ap", "seattle airport") &&
		either(merchant, desc, "cart", "chair") {
		return "transportation"
	}
	if either(merchant, desc, "airport") && either(merchant, desc, "cart", "chair") {
		return "transportation"
	}

	if either(merchant, desc, "chevron") {
		return "transportation"
	}
	for _, station := range gasStations {
		if strings.Contains(merchant, station) || strings.Contains(desc, station) {
			return "transportation"
		}
	}
	// "76" alone would match "CHECK 176"; require station context.
	if either(merchant, desc, "76 station", "76 gas", "union 76", "76 fuel") &&
		!either(merchant, desc, "check") {
		return "transportation"
	}
	if containsAny(merchant, "gas station", "gasstation", "fuel", "petrol", "gas ") ||
		strings.Contains(desc, "gas station") {
		return "transportation"
	}
	if either(merchant, desc, "honda ctr", "hondactr", "honda of", "honda dealer") {
		return "transportation"
	}

	// Entertainment venues live here ahead of the generic education scan.
	if either(merchant, desc, "amc") {
		return "entertainment"
	}
	if either(merchant, desc, "state fair", "statefair", "disney", "universal studio",
		"sea world", "seaworld", "camping", "cape disappointment", "recreation.gov") {
		return "entertainment"
	}
	for _, venue := range entertainmentVenues {
		if strings.Contains(merchant, venue) || strings.Contains(desc, venue) {
			return "entertainment"
		}
	}
	for _, svc := range streamingServices {
		if strings.Contains(merchant, svc) || strings.Contains(desc, svc) {
			return "entertainment"
		}
	}
	if containsAny(merchant, "entertainment", "arcade", "bowling", "mini golf", "laser tag") ||
		strings.Contains(desc, "entertainment") {
		return "entertainment"
	}
	if either(merchant, desc, "top golf", "topgolf", "conundroom") {
		return "entertainment"
	}

	// School meal payments are food, districts are education.
	if either(merchant, desc, "paypams", "pay pams") {
		return "dining"
	}
	if either(merchant, desc, "school district", "schooldistrict", "school distri") {
		return "education"
	}
	if either(merchant, desc, "vehicle licensing", "wa vehicle license") ||
		strings.Contains(strings.ToUpper(raw), "WA VEHICLE LICENSING") {
		return "transportation"
	}
	if either(merchant, desc, "76-falco", "76 falco", "76falco") {
		return "transportation"
	}
	if either(merchant, desc, "university book store", "universitybookstore", "university bookstore") {
		return "education"
	}
	// Pearson VUE style testing centers. Short exam tokens like "gre", "sat"
	// and "act" must stand alone: "bellevue chiropractic" is not an exam fee.
	if either(merchant, desc, "vue") &&
		(containsAnyWord(merchant, "exam", "test", "aamc", "sat", "toefl", "gre", "gmat", "lsat", "mcat", "act") ||
			containsAnyWord(desc, "exam", "test", "aamc", "sat", "toefl", "gre", "gmat", "lsat", "mcat", "act")) {
		return "education"
	}
	upper := strings.ToUpper(raw)
	for _, exam := range examKeywords {
		if containsWord(merchant, exam) || containsWord(desc, exam) ||
			containsWord(upper, strings.ToUpper(exam)) {
			return "education"
		}
	}
	if either(merchant, desc, "anki remote", "sp anki remote") {
		return "education"
	}
	for _, term := range regionalSchoolTerms {
		if strings.Contains(merchant, term) || strings.Contains(desc, term) {
			return "education"
		}
	}
	for _, school := range schoolTypes {
		if strings.Contains(merchant, school) || strings.Contains(desc, school) {
			return "education"
		}
	}
	for _, media := range educationalMedia {
		if strings.Contains(merchant, media) || strings.Contains(desc, media) {
			return "education"
		}
	}
	for _, edu := range educationKeywords {
		if strings.Contains(merchant, edu) || strings.Contains(desc, edu) {
			return "education"
		}
	}
	return ""
}
