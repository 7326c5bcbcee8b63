package classify

import "strings"

var gymsAndFitness = []string{
	"proclub", "pro club", "24 hour fitness", "24hour fitness", "24hr fitness",
	"gold's gym", "golds gym", "goldsgym",
	"planet fitness", "planetfitness", "equinox", "lifetime fitness", "lifetimefitness",
	"ymca", "la fitness", "lafitness", "crunch fitness", "crunchfitness",
	"anytime fitness", "anytimefitness", "orange theory", "orangetheory", "crossfit",
	"fitness", "gym", "health club", "healthclub", "athletic club", "athleticclub",
	"workout", "personal trainer", "personaltrainer",
	"badminton",
}

var beautyServices = []string{
	"beauty salon", "beautysalon", "beauty parlor", "beautyparlor",
	"hair salon", "hairsalon", "haircut", "hair cut",
	"hair color", "haircolor", "waxing", "makeup", "make up",
	"beauty studio", "beautystudio", "salon", "saloon",
	"supercuts", "super cuts", "great clips", "greatclips",
	"nail salon", "nailsalon", "nails", "manicure", "pedicure",
	"spa", "massage", "skincare", "skin care",
	"cosmetics", "cosmetic store", "makeup store",
}

func detectHealth(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	for _, gym := range gymsAndFitness {
		if strings.Contains(merchant, gym) || strings.Contains(desc, gym) {
			return "health"
		}
	}
	for _, beauty := range beautyServices {
		if strings.Contains(merchant, beauty) || strings.Contains(desc, beauty) {
			return "health"
		}
	}
	if either(merchant, desc, "golf", "driving range", "tennis") {
		return "health"
	}
	if either(merchant, desc, "soccer", "football", "basketball", "baseball",
		"swimming", "yoga", "pilates", "martial arts") {
		return "health"
	}
	if either(merchant, desc, "ski resort", "summit at snoqualmie") {
		return "health"
	}
	// ski activity, but gear shops (Mini Mountain) are retail.
	if either(merchant, desc, "ski") &&
		!either(merchant, desc, "mini mountain", "ski gear", "ski equipment") {
		return "health"
	}
	return ""
}
