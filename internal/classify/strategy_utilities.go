package classify

import "strings"

var utilityCompanies = []string{
	"puget sound energy", "pse", "pacific gas", "pg&e", "pge",
	"southern california edison", "sce", "san diego gas", "sdge",
	"edison", "con edison", "coned", "duke energy", "dukeenergy",
	"dominion energy", "dominionenergy", "exelon", "first energy", "firstenergy",
	"american electric", "aep", "southern company", "southerncompany",
	"next era", "nextera", "xcel energy", "xcelenergy", "centerpoint",
	"center point", "entergy", "evergy", "pacificorp", "pacific corp",
	"portland general", "portlandgeneral",
}

var cableInternetProviders = []string{
	"comcast", "xfinity", "spectrum", "charter", "cox",
	"optimum", "altice", "frontier", "centurylink", "century link",
	"windstream", "suddenlink", "mediacom", "dish network", "dish",
	"directv", "direct tv", "att u-verse", "att uverse", "fios", "verizon fios",
}

var phoneProviders = []string{
	"verizon wireless", "verizonwireless", "verizon",
	"at&t", "att", "at and t", "t-mobile", "tmobile", "t mobile",
	"sprint", "us cellular", "uscellular", "cricket",
	"boost mobile", "boostmobile", "metropcs", "metro pcs",
	"mint mobile", "mintmobile", "google fi", "googlefi", "visible",
	"straight talk", "straighttalk", "us mobile", "usmobile",
}

func detectUtilities(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	// Airport carts and chairs look like "Seattle Public Utilities" to the
	// substring rules below; they are airport fees.
	if either(merchant, desc, "seattleap", "seattle ap", "airport") &&
		either(merchant, desc, "cart", "chair") {
		return "transportation"
	}
	// Municipal utilities first so "CITY OF BELLEVUE UTILITY" never falls
	// through to a transportation pattern on "city".
	if either(merchant, desc, "city of") && either(merchant, desc, "utility", "utilities") {
		return "utilities"
	}
	for _, company := range utilityCompanies {
		if strings.Contains(merchant, company) || strings.Contains(desc, company) {
			return "utilities"
		}
	}
	if either(merchant, desc, "energy", "ener ", "ener billpay", "electric", "electricity",
		"utility", "utilities", "gas company", "gascompany", "water company",
		"watercompany", "power company", "powercompany") {
		return "utilities"
	}
	if either(merchant, desc, "billpay", "bill pay") &&
		either(merchant, desc, "ener", "energy", "electric", "gas", "water", "utility") {
		return "utilities"
	}
	for _, provider := range cableInternetProviders {
		if strings.Contains(merchant, provider) || strings.Contains(desc, provider) {
			return "utilities"
		}
	}
	for _, provider := range phoneProviders {
		if strings.Contains(merchant, provider) || strings.Contains(desc, provider) {
			return "utilities"
		}
	}
	// Parking and ride services are transportation even when they sound
	// like phone/utility payments.
	if either(merchant, desc, "pay by phone", "paybyphone") ||
		strings.Contains(strings.ToUpper(raw), "PAY BY PHONE") ||
		strings.Contains(strings.ToUpper(raw), "PAYBYPHONE") {
		return "transportation"
	}
	if either(merchant, desc, "sdot", "s dot", "seattle dot", "impark") {
		return "transportation"
	}
	if strings.Contains(merchant, "metropolis") && either(merchant, desc, "parking") {
		return "transportation"
	}
	for _, svc := range transportationServices {
		if strings.Contains(merchant, svc) || strings.Contains(desc, svc) {
			return "transportation"
		}
	}
	for _, dot := range stateDOTPatterns {
		if strings.Contains(merchant, dot) || strings.Contains(desc, dot) {
			return "transportation"
		}
	}
	if strings.Contains(merchant, "amex") && strings.Contains(merchant, "airlines") &&
		containsAny(merchant, "fee", "reimbursement") {
		return "transportation"
	}
	if either(merchant, desc, "car service", "hona ctr", "honactr") {
		return "transportation"
	}
	return ""
}

var transportationServices = []string{
	"uber", "lyft", "taxi", "rapido", "cab", "rideshare",
	"parkmobile", "didi", "grab", "ola", "careem", "gett", "bolt",
	"amtrak", "greyhound", "bus ", "transit", "metro",
	"parking", "parking meter", "parkingmeter", "garage",
	"gojek", "cabify", "blablacar", "indrive", "waymo", "chauffeur",
	"zoox", "yellow cab", "checkers cab", "black cab",
	"ticket machine", "ticketmachine", "lul", "london underground", "underground",
}

var stateDOTPatterns = []string{
	"wsdot", "washington state dot", "washington state department of transportation",
	"goodtogo", "good to go", "good-to-go",
	"caltrans", "cal trans", "california dot", "fastrak", "fast trak",
	"nysdot", "ny dot", "new york state dot", "ez pass", "ezpass", "e-zpass",
	"new york thruway",
	"txdot", "texas dot", "ez tag", "eztag", "txtag", "tx tag", "dallas north tollway",
	"fdot", "florida dot", "sunpass", "sun pass", "epass", "e pass", "leeway",
	"idot", "illinois dot", "ipass", "i-pass", "illinois tollway",
	"massdot", "mass dot", "massachusetts dot", "mass pike",
	"penndot", "penn dot", "pennsylvania dot", "pa turnpike", "pennsylvania turnpike",
	"njdot", "nj dot", "new jersey dot", "garden state parkway", "new jersey turnpike",
	"mdot", "md dot", "maryland dot", "maryland transportation authority",
	"vdot", "va dot", "virginia dot", "virginia transportation authority",
	"state dot", "department of transportation",
	"dot toll", "toll road", "tollway", "toll authority", "toll plaza",
	"highway authority", "transportation authority", "turnpike authority",
	"eractoll", "era toll", "toll payment", "toll charge", "toll fee",
	"road toll", "bridge toll", "tunnel toll", "highway toll", "expressway toll",
}
