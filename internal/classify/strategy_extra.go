package classify

import "strings"

var airlines = []string{
	"alaska air", "alaskaair", "delta air", "delta airlines", "united airlines",
	"american airlines", "southwest", "jetblue", "jet blue", "spirit airlines",
	"frontier airlines", "hawaiian airlines", "lufthansa", "emirates",
	"qatar airways", "british airways", "air india", "air france", "klm",
	"singapore airlines", "cathay pacific", "turkish airlines", "airline", "airways",
}

var hotels = []string{
	"marriott", "hilton", "hyatt", "sheraton", "westin", "holiday inn",
	"holidayinn", "best western", "bestwestern", "doubletree", "double tree",
	"fairmont", "four seasons", "fourseasons", "ritz carlton", "ritz-carlton",
	"la quinta", "laquinta", "motel 6", "motel6", "super 8", "super8",
	"airbnb", "vrbo", "hotel", "motel", "resort", "hostel", "inn ",
}

var loungeBrands = []string{
	"priority pass", "prioritypass", "centurion lounge", "admirals club",
	"united club", "delta sky club", "sky club", "escape lounge", "plaza premium",
	"airport lounge", "the club at",
}

func detectTravel(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	for _, a := range airlines {
		if strings.Contains(merchant, a) || strings.Contains(desc, a) {
			return "travel"
		}
	}
	for _, h := range hotels {
		if strings.Contains(merchant, h) || strings.Contains(desc, h) {
			return "travel"
		}
	}
	for _, l := range loungeBrands {
		if strings.Contains(merchant, l) || strings.Contains(desc, l) {
			return "travel"
		}
	}
	if either(merchant, desc, "expedia", "booking.com", "priceline", "kayak",
		"travelocity", "orbitz", "tripadvisor", "cruise") {
		return "travel"
	}
	return ""
}

var medicalProviders = []string{
	"hospital", "clinic", "urgent care", "urgentcare", "medical center",
	"medicalcenter", "pharmacy", "walgreens", "cvs", "rite aid", "riteaid",
	"kaiser", "providence", "swedish medical", "overlake", "virginia mason",
	"dental", "dentist", "orthodont", "optometr", "vision center",
	"pediatric", "dermatolog", "physical therapy", "physicaltherapy",
	"lab corp", "labcorp", "quest diagnostics", "questdiagnostics",
}

func detectHealthcare(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	for _, p := range medicalProviders {
		if strings.Contains(merchant, p) || strings.Contains(desc, p) {
			return "healthcare"
		}
	}
	if either(merchant, desc, "doctor", "physician", "medicine", "prescription", "rx ") {
		return "healthcare"
	}
	return ""
}

var retailers = []string{
	"nordstrom", "macys", "macy's", "bloomingdale", "jcpenney", "jc penney",
	"kohls", "kohl's", "ross", "tj maxx", "tjmaxx", "marshalls",
	"old navy", "oldnavy", "gap", "banana republic", "bananarepublic",
	"h&m", "zara", "uniqlo", "forever 21", "forever21",
	"best buy", "bestbuy", "ikea", "bed bath", "bedbath",
	"dsw", "foot locker", "footlocker", "rei", "dick's sporting", "dicks sporting",
	"mini mountain", "sephora", "ulta", "bath & body", "bath and body",
	"victoria's secret", "victorias secret",
}

func detectShopping(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	for _, r := range retailers {
		if strings.Contains(merchant, r) || strings.Contains(desc, r) {
			return "shopping"
		}
	}
	if containsAny(merchant, "outlet", "department store", "departmentstore", "mall ", "boutique") {
		return "shopping"
	}
	return ""
}

func detectPet(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	if either(merchant, desc, "petco", "petsmart", "pet smart", "chewy",
		"veterinar", "vet clinic", "vetclinic", "animal hospital", "animalhospital",
		"pet clinic", "petclinic", "banfield", "pet food", "petfood") {
		return "pet"
	}
	return ""
}

func detectCharity(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	if either(merchant, desc, "donation", "donate", "red cross", "redcross",
		"goodwill", "salvation army", "salvationarmy", "united way", "unitedway",
		"gofundme", "go fund me", "charity", "charitable", "foundation",
		"nonprofit", "non-profit") {
		return "charity"
	}
	return ""
}
