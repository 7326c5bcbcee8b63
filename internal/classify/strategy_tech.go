package classify

import "strings"

var aiTechServices = []string{
	"chatgpt", "chat gpt", "openai", "open ai",
	"anthropic", "claude", "cohere", "hugging face", "huggingface",
	"cursor", "github copilot", "copilot",
	"replicate", "together ai", "togetherai",
}

var techCompanies = []string{
	"microsoft", "apple", "google", "amazon web services", "aws",
	"adobe", "oracle", "salesforce", "servicenow", "atlassian",
	"github", "gitlab", "slack", "zoom", "dropbox",
	"notion", "figma", "sketch", "linear", "vercel", "netlify",
}

var homeImprovementStores = []string{
	"lowes", "lowe's", "menards", "ace hardware", "acehardware",
	"true value", "truevalue", "harbor freight", "harborfreight",
	"northern tool", "northerntool",
}

func detectTech(merchant, desc, raw string) string {
	if strings.TrimSpace(merchant) == "" {
		return ""
	}
	for _, svc := range aiTechServices {
		if strings.Contains(merchant, svc) || strings.Contains(desc, svc) {
			return "tech"
		}
	}
	if either(merchant, desc, "ai powered", "artificial intelligence") {
		return "tech"
	}
	for _, company := range techCompanies {
		if strings.Contains(merchant, company) || strings.Contains(desc, company) {
			return "tech"
		}
	}
	if containsAny(merchant, "software", "saas", "cloud", "api", "developer", "dev tools") ||
		strings.Contains(desc, "software") {
		return "tech"
	}

	if either(merchant, desc, "home depot", "homedepot") {
		return "home improvement"
	}
	for _, store := range homeImprovementStores {
		if strings.Contains(merchant, store) || strings.Contains(desc, store) {
			return "home improvement"
		}
	}
	if containsAny(merchant, "hardware", "home improvement", "homeimprovement", "lumber", "building supply") ||
		strings.Contains(desc, "hardware") {
		return "home improvement"
	}

	// Bakeries and tea shops show up late in the chain; they are dining.
	if either(merchant, desc, "hoffman", "le panier", "lepanier", "bakery", "baker") {
		return "dining"
	}
	if either(merchant, desc, "tea lab", "tealab", "chai", "boba", "mochinut", "ezell") {
		return "dining"
	}
	return ""
}
