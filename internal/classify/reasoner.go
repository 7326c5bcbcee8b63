package classify

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category source tags.
const (
	catSrcFallback = "FALLBACK"
	catSrcOverride = "RULE_OVERRIDE"
	catSrcPlaid    = "PLAID"
	catSrcHybrid   = "HYBRID"
	catSrcML       = "ML"
	catSrcParser   = "PARSER"
	catSrcImporter = "IMPORTER"
	catSrcAccount  = "ACCOUNT"
	catSrcBucket   = "MERCHANT_BUCKET"
	catSrcDefault  = "DEFAULT"
)

// reasonerState carries every signal the arbitration rules may consult.
type reasonerState struct {
	importerPrimary  string
	importerDetailed string
	parserCategory   string
	mlCategory       string
	mlConfidence     float64
	accountHint      string

	merchant string // normalized
	desc     string // normalized
	combined string
	amount   *decimal.Decimal
	channel  string
	source   ImportSource
	class    AccountClass
}

// arbitrationRule is one pure step of the reasoning ladder. nil means "no
// opinion, next rule".
type arbitrationRule func(s *reasonerState) *CategoryResult

// Reasoner arbitrates between importer, parser and ML categories plus the
// merchant/description override tables. Rules run in fixed order; the first
// non-nil result is final.
type Reasoner struct {
	rules []arbitrationRule
}

func NewReasoner() *Reasoner {
	return &Reasoner{rules: []arbitrationRule{
		ruleFallbackHeuristic,
		ruleMerchantOverrideTable,
		ruleTravelOverride,
		ruleCardCredit,
		ruleCheckingCredit,
		ruleUtilitiesOverride,
		ruleTransferOverride,
		ruleStandardLadder,
	}}
}

// Reason resolves the final category. It always returns a result; the last
// ladder rung is the "other" default.
func (r *Reasoner) Reason(s *reasonerState) CategoryResult {
	var out CategoryResult
	for _, rule := range r.rules {
		if res := rule(s); res != nil {
			out = *res
			break
		}
	}
	// expenses can never land on income, whatever the signals said
	if s.amount != nil && s.amount.IsNegative() && out.Primary == "income" {
		if s.parserCategory != "" && s.parserCategory != "income" {
			out = CategoryResult{Primary: s.parserCategory, Detailed: s.parserCategory, Source: catSrcParser, Confidence: 0.7}
		} else {
			out = CategoryResult{Primary: "other", Detailed: "other", Source: catSrcDefault, Confidence: 0.5}
		}
	}
	if out.Detailed == "" {
		out.Detailed = out.Primary
	}
	return out
}

// --- rule 1: ACH-credit / interest fallback -------------------------------

var interestKeywords = []string{
	"interest", "intrst", "intr ", "intrest", "intr payment",
	"intrst payment", "intrst pymnt", "intr pymnt",
}

var specificIncomeDetails = map[string]bool{
	"deposit": true, "interest": true, "dividend": true, "salary": true,
	"stipend": true, "rentincome": true, "tips": true, "otherincome": true,
	"payroll": true,
}

// ruleFallbackHeuristic pre-empts everything for ACH credits and interest
// postings, tolerating the bank-feed misspellings of "interest".
func ruleFallbackHeuristic(s *reasonerState) *CategoryResult {
	if s.amount == nil {
		return nil
	}
	if strings.EqualFold(s.channel, "ach") && s.amount.IsPositive() {
		if !hasSpecificIncome(s) {
			detail := incomeDetailFromText(s.combined)
			switch detail {
			case "income":
				return &CategoryResult{Primary: "deposit", Detailed: "deposit", Source: catSrcFallback, Confidence: 0.9}
			case "rentincome":
				return &CategoryResult{Primary: "income", Detailed: "rentIncome", Source: catSrcFallback, Confidence: 0.9}
			default:
				return &CategoryResult{Primary: "income", Detailed: detail, Source: catSrcFallback, Confidence: 0.9}
			}
		}
	}
	if isInterestText(s.combined) {
		generic := s.importerPrimary == "other" || s.parserCategory == "other" ||
			(s.importerPrimary == "income" && !hasSpecificIncome(s))
		if generic {
			return &CategoryResult{Primary: "income", Detailed: "interest", Source: catSrcFallback, Confidence: 0.9}
		}
	}
	return nil
}

func hasSpecificIncome(s *reasonerState) bool {
	return specificIncomeDetails[s.importerPrimary] ||
		specificIncomeDetails[s.importerDetailed] ||
		specificIncomeDetails[s.parserCategory]
}

func isInterestText(text string) bool {
	if containsAny(text, "cd interest", "certificate") {
		return false
	}
	return containsAny(text, interestKeywords...)
}

func incomeDetailFromText(text string) string {
	switch {
	case containsAny(text, "salary", "payroll", "paycheck", "direct deposit", "wage", "compensation"):
		return "salary"
	case isInterestText(text):
		return "interest"
	case containsAny(text, "dividend", "div "):
		return "dividend"
	case strings.Contains(text, "stipend"):
		return "stipend"
	case containsAny(text, "rent income", "rental income", "rent payment"):
		return "rentincome"
	case strings.Contains(text, "tip") && !strings.Contains(text, "tip jar"):
		return "tips"
	}
	return "income"
}

// --- rule 2: merchant/description override table --------------------------

// ruleMerchantOverrideTable beats any importer category: importer labels are
// known to be wrong for POS-coded restaurants, gas stations and exam fees.
func ruleMerchantOverrideTable(s *reasonerState) *CategoryResult {
	hit := func(cat string) *CategoryResult {
		return &CategoryResult{Primary: cat, Detailed: cat, Source: catSrcOverride, Confidence: 0.95}
	}
	for _, m := range posMarkers {
		if strings.Contains(s.combined, m) {
			return hit("dining")
		}
	}
	for _, chain := range fastFoodChains {
		if strings.Contains(s.combined, chain) {
			return hit("dining")
		}
	}
	for _, g := range usGroceryStores {
		if strings.Contains(s.merchant, g) {
			// costco gas stays fuel even though costco is a grocery brand
			if containsAny(s.combined, "gas", "fuel") && strings.Contains(s.combined, "costco") {
				return hit("transportation")
			}
			return hit("groceries")
		}
	}
	for _, station := range gasStations {
		if strings.Contains(s.combined, station) && containsAny(s.combined, "gas", "fuel", "station") {
			return hit("transportation")
		}
	}
	// word-boundary scan: "gre" must not fire inside "walgreens", nor "sat"
	// inside "saturn"
	for _, exam := range examKeywords {
		if containsWord(s.combined, exam) {
			return hit("education")
		}
	}
	if containsAny(s.combined, "vet clinic", "veterinar", "animal hospital", "pet clinic", "banfield") {
		return hit("pet")
	}
	return nil
}

// --- rule 3: travel wins outright ------------------------------------------

// ruleTravelOverride lets airlines, hotels, lounges and transit beat a
// "payment"/"utilities" label and even a credit-card account hint.
func ruleTravelOverride(s *reasonerState) *CategoryResult {
	for _, a := range airlines {
		if strings.Contains(s.combined, a) {
			return &CategoryResult{Primary: "travel", Detailed: "travel", Source: catSrcOverride, Confidence: 0.95}
		}
	}
	for _, h := range hotels {
		if strings.Contains(s.combined, h) {
			return &CategoryResult{Primary: "travel", Detailed: "travel", Source: catSrcOverride, Confidence: 0.95}
		}
	}
	for _, l := range loungeBrands {
		if strings.Contains(s.combined, l) {
			return &CategoryResult{Primary: "travel", Detailed: "travel", Source: catSrcOverride, Confidence: 0.95}
		}
	}
	if containsAny(s.combined, "london underground", "underground", " lul ", "transit authority") {
		return &CategoryResult{Primary: "transportation", Detailed: "transportation", Source: catSrcOverride, Confidence: 0.95}
	}
	return nil
}

// --- rule 4: credits on card/loan accounts ---------------------------------

var subscriptionBrands = []string{
	"audible", "kindle unlimited", "icloud", "apple.com/bill", "google storage",
	"google one", "dropbox", "onepassword", "1password", "nytimes", "wsj",
	"medium.com", "patreon", "substack",
}

// ruleCardCredit handles amount>0 on credit-card/loan-class accounts: payoff
// pattern first, then the trust chain, then the curated brand buckets, and
// only then the generic "credit".
func ruleCardCredit(s *reasonerState) *CategoryResult {
	if s.amount == nil || !s.amount.IsPositive() {
		return nil
	}
	if s.class != ClassCreditCard && s.class != ClassLoan {
		return nil
	}
	if isPaymentReceived(s.combined) {
		return &CategoryResult{Primary: "payment", Detailed: "payment", Source: catSrcOverride, Confidence: 0.95}
	}
	if g := nonGeneric(s.importerPrimary); g != "" {
		det := s.importerDetailed
		if det == "" {
			det = g
		}
		return &CategoryResult{Primary: g, Detailed: det, Source: catSrcImporter, Confidence: 0.85}
	}
	if g := nonGeneric(s.parserCategory); g != "" {
		return &CategoryResult{Primary: g, Detailed: g, Source: catSrcParser, Confidence: 0.8}
	}
	if s.mlCategory != "" && s.mlConfidence > 0.7 {
		return &CategoryResult{Primary: s.mlCategory, Detailed: s.mlCategory, Source: catSrcML, Confidence: s.mlConfidence}
	}
	if cat := merchantBucketScan(s.combined); cat != "" {
		return &CategoryResult{Primary: cat, Detailed: cat, Source: catSrcBucket, Confidence: 0.85}
	}
	return &CategoryResult{Primary: "credit", Detailed: "credit", Source: catSrcAccount, Confidence: 0.6}
}

// merchantBucketScan is the curated brand fallback for unlabeled card
// credits (typically refunds). Streaming brands split into subscriptions vs
// entertainment on subscription/monthly wording.
func merchantBucketScan(text string) string {
	for _, b := range subscriptionBrands {
		if strings.Contains(text, b) {
			return "subscriptions"
		}
	}
	for _, g := range usGroceryStores {
		if strings.Contains(text, g) {
			return "groceries"
		}
	}
	for _, c := range fastFoodChains {
		if strings.Contains(text, c) {
			return "dining"
		}
	}
	for _, station := range gasStations {
		if strings.Contains(text, station) && containsAny(text, "gas", "fuel") {
			return "transportation"
		}
	}
	for _, l := range loungeBrands {
		if strings.Contains(text, l) {
			return "travel"
		}
	}
	for _, a := range airlines {
		if strings.Contains(text, a) {
			return "travel"
		}
	}
	for _, h := range hotels {
		if strings.Contains(text, h) {
			return "travel"
		}
	}
	for _, e := range examKeywords {
		if strings.Contains(text, e) {
			return "education"
		}
	}
	for _, svc := range streamingServices {
		if strings.Contains(text, svc) {
			if containsAny(text, "subscription", "monthly") {
				return "subscriptions"
			}
			return "entertainment"
		}
	}
	return ""
}

func nonGeneric(cat string) string {
	if cat == "" || cat == "other" || cat == "unknown_category" {
		return ""
	}
	return cat
}

// --- rule 5: credits on checking accounts ----------------------------------

// ruleCheckingCredit re-routes checking-account credits mislabeled as
// "payment" (or left generic) to payroll, rental income, rewards or deposit.
func ruleCheckingCredit(s *reasonerState) *CategoryResult {
	if s.amount == nil || !s.amount.IsPositive() {
		return nil
	}
	checking := s.class == ClassChecking
	if !checking && s.class == ClassUnknown {
		checking = strings.EqualFold(s.channel, "ach") || strings.EqualFold(s.channel, "online")
	}
	if !checking {
		return nil
	}
	genericPayment := s.importerPrimary == "payment" || s.parserCategory == "payment" || s.mlCategory == "payment"
	// generic income or no signal at all routes through the same checks:
	// the detail (salary vs rent vs reward) comes from the text
	genericIncome := s.mlCategory == "income" && !hasSpecificIncome(s)
	noSignal := s.importerPrimary == "" && s.parserCategory == "" && (s.mlCategory == "" || genericIncome)
	if !genericPayment && !noSignal {
		return nil
	}

	if containsAny(s.combined, "payroll", "salary", "paycheck", "direct deposit", "wage", "compensation") {
		return &CategoryResult{Primary: "income", Detailed: "salary", Source: catSrcOverride, Confidence: 0.95}
	}
	if containsAny(s.combined, "rental income", "rent income", "rent payment", "rental", "property management", "sigonfile", "grisalin") {
		return &CategoryResult{Primary: "income", Detailed: "rentIncome", Source: catSrcOverride, Confidence: 0.95}
	}
	if containsAny(s.combined, "reward", "rebate", "cash back") ||
		(strings.Contains(s.combined, "costco") && strings.Contains(s.combined, "cash")) {
		return &CategoryResult{Primary: "income", Detailed: "income", Source: catSrcOverride, Confidence: 0.95}
	}
	if genericPayment && !containsAny(s.combined, "payment", "autopay", "credit card") {
		return &CategoryResult{Primary: "deposit", Detailed: "deposit", Source: catSrcOverride, Confidence: 0.95}
	}
	return nil
}

// --- rules 6 and 7: payment mislabels --------------------------------------

func anySignalIsPayment(s *reasonerState) bool {
	return s.importerPrimary == "payment" || s.parserCategory == "payment" || s.mlCategory == "payment"
}

// ruleUtilitiesOverride corrects utility bills labeled "payment". gas needs
// a word boundary so "gastropub" stays food.
func ruleUtilitiesOverride(s *reasonerState) *CategoryResult {
	if !anySignalIsPayment(s) {
		return nil
	}
	utilities := containsAny(s.combined, "electric", "electricity", "water",
		"internet", "phone", "cable", "utility", "utilities") ||
		containsWord(s.combined, "gas")
	if !utilities {
		return nil
	}
	return &CategoryResult{Primary: "utilities", Detailed: "utilities", Source: catSrcOverride, Confidence: 0.95}
}

// ruleTransferOverride corrects checks and wires labeled "payment".
func ruleTransferOverride(s *reasonerState) *CategoryResult {
	if !anySignalIsPayment(s) {
		return nil
	}
	if !hasTransferToken(s.combined) {
		return nil
	}
	return &CategoryResult{Primary: "transfer", Detailed: "transfer", Source: catSrcOverride, Confidence: 0.95}
}

// --- rule 8: the standard trust ladder --------------------------------------

func ruleStandardLadder(s *reasonerState) *CategoryResult {
	// Plaid labels are generally reliable once mapped
	if g := nonGeneric(s.importerPrimary); g != "" && s.source == SourcePlaid {
		det := s.importerDetailed
		if det == "" {
			det = g
		}
		return &CategoryResult{Primary: g, Detailed: det, Source: catSrcPlaid, Confidence: 0.9}
	}
	if s.parserCategory != "" && strings.EqualFold(s.parserCategory, s.importerPrimary) {
		return &CategoryResult{Primary: s.parserCategory, Detailed: s.parserCategory, Source: catSrcHybrid, Confidence: 0.95}
	}
	if s.mlCategory != "" && s.mlConfidence > 0.8 && strings.EqualFold(s.mlCategory, s.parserCategory) {
		return &CategoryResult{Primary: s.mlCategory, Detailed: s.mlCategory, Source: catSrcML, Confidence: s.mlConfidence}
	}
	if s.parserCategory != "" && s.parserCategory != "other" && s.importerPrimary == "other" {
		return &CategoryResult{Primary: s.parserCategory, Detailed: s.parserCategory, Source: catSrcParser, Confidence: 0.85}
	}
	if s.accountHint != "" {
		return &CategoryResult{Primary: s.accountHint, Detailed: s.accountHint, Source: catSrcAccount, Confidence: 0.9}
	}
	if s.mlCategory != "" && s.mlConfidence > 0.8 {
		return &CategoryResult{Primary: s.mlCategory, Detailed: s.mlCategory, Source: catSrcML, Confidence: s.mlConfidence}
	}
	if s.parserCategory != "" && nonGeneric(s.importerPrimary) == "" {
		return &CategoryResult{Primary: s.parserCategory, Detailed: s.parserCategory, Source: catSrcParser, Confidence: 0.8}
	}
	if s.importerPrimary != "" {
		det := s.importerDetailed
		if det == "" {
			det = s.importerPrimary
		}
		return &CategoryResult{Primary: s.importerPrimary, Detailed: det, Source: catSrcImporter, Confidence: 0.7}
	}
	if s.parserCategory != "" {
		return &CategoryResult{Primary: s.parserCategory, Detailed: s.parserCategory, Source: catSrcParser, Confidence: 0.7}
	}
	return &CategoryResult{Primary: "other", Detailed: "other", Source: catSrcDefault, Confidence: 0.5}
}

// accountCategoryHint maps account class to a weak category prior.
func accountCategoryHint(class AccountClass, accountType, accountSubtype string) string {
	switch class {
	case ClassInvestment:
		return "investment"
	case ClassLoan, ClassCreditCard:
		return "payment"
	}
	return ""
}
