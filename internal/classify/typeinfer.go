package classify

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Type-inference source tags.
const (
	srcAccountType      = "ACCOUNT_TYPE"
	srcCategoryOverride = "CATEGORY_OVERRIDE"
	srcCategory         = "CATEGORY"
	srcHybrid           = "HYBRID"
	srcAccount          = "ACCOUNT"
	srcAmount           = "AMOUNT"
	srcDefault          = "DEFAULT"
)

// BaseTypeHeuristic is the baseline account+category+amount rule consulted
// when no explicit ladder tier fires.
type BaseTypeHeuristic func(class AccountClass, categoryPrimary, categoryDetailed string, amount *decimal.Decimal) TxnType

// TypeInference derives the transaction type through a strict priority
// ladder: account class and sign first, then category overrides, textual
// payment patterns, the baseline heuristic, and finally raw debit/credit
// indicator tokens.
type TypeInference struct {
	Base BaseTypeHeuristic
}

func NewTypeInference() *TypeInference {
	return &TypeInference{Base: DefaultBaseType}
}

// Infer resolves the type for one transaction given the already-arbitrated
// category.
func (t *TypeInference) Infer(in Input, categoryPrimary, categoryDetailed string) TypeResult {
	class := DeriveAccountClass(in.AccountType, in.AccountSubtype)
	amount := boundedAmount(in.Amount)
	text := Normalize(in.MerchantName + " " + in.Description)
	catP := Normalize(categoryPrimary)
	catD := Normalize(categoryDetailed)

	// 0. account-class + sign table
	if amount != nil && !amount.IsZero() {
		if r := t.accountClassRule(class, amount, text, catP); r != nil {
			return *r
		}
	}

	// 1. category overrides
	if r := t.categoryRule(class, amount, text, catP, catD); r != nil {
		return *r
	}

	// 2. payment-received pattern, independent of account presence
	if isPaymentReceived(text) {
		return TypeResult{Type: TypePayment, Source: srcHybrid, Confidence: 0.95}
	}

	// 3. loan payment recognized from text alone
	if isLoanPayment(text) || isCreditCardPayment(text) {
		return TypeResult{Type: TypePayment, Source: srcHybrid, Confidence: 0.95}
	}

	// 4. baseline heuristic
	base := t.Base(class, catP, catD, amount)

	// 5. post-hoc corrections on the baseline
	pos := amount != nil && amount.IsPositive()
	if base == TypePayment && class == ClassChecking && pos {
		base = TypeIncome
	}
	if base == TypePayment && class == ClassCreditCard && pos && !isPaymentReceived(text) {
		base = TypeExpense
	}

	// 6. debit/credit indicator tokens can override everything but investments
	if ind := Normalize(in.TransactionTypeIndicator); ind != "" && base != TypeInvestment {
		if indicatorMatches(ind, "debit", "dr", "db") {
			return TypeResult{Type: TypeExpense, Source: srcHybrid, Confidence: 0.95}
		}
		if indicatorMatches(ind, "credit", "cr") {
			return TypeResult{Type: TypeIncome, Source: srcHybrid, Confidence: 0.95}
		}
	}

	source, conf := srcDefault, 0.5
	switch {
	case class != ClassUnknown:
		source, conf = srcAccount, 0.9
	case catP != "":
		source, conf = srcCategory, 0.8
	case amount != nil:
		source, conf = srcAmount, 0.7
	}
	return TypeResult{Type: base, Source: source, Confidence: conf}
}

func (t *TypeInference) accountClassRule(class AccountClass, amount *decimal.Decimal, text, catP string) *TypeResult {
	pos := amount.IsPositive()
	res := func(tt TxnType, conf float64) *TypeResult {
		return &TypeResult{Type: tt, Source: srcAccountType, Confidence: conf}
	}
	switch class {
	case ClassCreditCard:
		if pos {
			// a posted autopay credit is the card payoff, not a charge
			if isPaymentReceived(text) {
				return res(TypePayment, 0.95)
			}
			return res(TypeExpense, 0.95)
		}
		if catP == "dining" {
			// dining charges are never payments, whatever the sign says
			return res(TypeExpense, 0.95)
		}
		return res(TypePayment, 0.95)
	case ClassInvestment:
		if pos {
			return res(TypeIncome, 0.95)
		}
		if containsAny(text+" "+catP, "fee", "charge", "commission", "custodial", "maintenance", "service charge") {
			return res(TypeExpense, 0.95)
		}
		return res(TypeInvestment, 0.95)
	case ClassLoan:
		if pos {
			if isLoanPayment(text) || isPaymentReceived(text) {
				return res(TypePayment, 0.95)
			}
			// disbursement or unrecognized credit, still a loan-side payment
			return res(TypePayment, 0.85)
		}
		return res(TypeExpense, 0.95)
	case ClassChecking:
		if pos {
			return res(TypeIncome, 0.95)
		}
		if isCreditCardPayment(text) {
			return res(TypePayment, 0.95)
		}
		return res(TypeExpense, 0.95)
	}
	return nil
}

func (t *TypeInference) categoryRule(class AccountClass, amount *decimal.Decimal, text, catP, catD string) *TypeResult {
	if catP == "" && catD == "" {
		return nil
	}
	pos := amount != nil && amount.IsPositive()
	switch catP {
	case "dining":
		return &TypeResult{Type: TypeExpense, Source: srcCategoryOverride, Confidence: 0.95}
	case "payment":
		switch {
		case class == ClassChecking && pos:
			return &TypeResult{Type: TypeIncome, Source: srcCategoryOverride, Confidence: 0.95}
		case class == ClassCreditCard && pos:
			return &TypeResult{Type: TypeExpense, Source: srcCategoryOverride, Confidence: 0.95}
		case catD == "utilities":
			return &TypeResult{Type: TypeExpense, Source: srcCategoryOverride, Confidence: 0.95}
		case hasTransferToken(text):
			return &TypeResult{Type: TypeExpense, Source: srcCategoryOverride, Confidence: 0.95}
		case isLoanPayment(text):
			return &TypeResult{Type: TypePayment, Source: srcCategory, Confidence: 0.95}
		case class == ClassLoan:
			return &TypeResult{Type: TypePayment, Source: srcCategory, Confidence: 0.95}
		default:
			return &TypeResult{Type: TypeExpense, Source: srcCategoryOverride, Confidence: 0.95}
		}
	case "deposit":
		if pos {
			return &TypeResult{Type: TypeIncome, Source: srcCategory, Confidence: 0.95}
		}
	case "investment":
		return &TypeResult{Type: TypeInvestment, Source: srcCategory, Confidence: 0.95}
	case "income", "salary":
		return &TypeResult{Type: TypeIncome, Source: srcCategory, Confidence: 0.95}
	}
	if catP == "utilities" || catD == "utilities" {
		return &TypeResult{Type: TypeExpense, Source: srcCategory, Confidence: 0.95}
	}
	return nil
}

// DefaultBaseType is the stock baseline heuristic: investment context wins,
// then income categories, then sign.
func DefaultBaseType(class AccountClass, categoryPrimary, categoryDetailed string, amount *decimal.Decimal) TxnType {
	if categoryPrimary == "income" && categoryDetailed == "deposit" {
		return TypeIncome
	}
	if class == ClassInvestment || categoryPrimary == "investment" || categoryDetailed == "investment" {
		return TypeInvestment
	}
	if categoryPrimary == "transfer" {
		return TypeTransfer
	}
	if categoryPrimary == "income" || isIncomeDetail(categoryDetailed) {
		return TypeIncome
	}
	if amount != nil && amount.IsPositive() {
		if categoryPrimary == "" || categoryPrimary == "other" || !expenseCategories[categoryPrimary] {
			return TypeIncome
		}
	}
	return TypeExpense
}

func isIncomeDetail(catD string) bool {
	switch catD {
	case "salary", "interest", "dividend", "stipend", "rentincome", "rent income", "tips", "deposit":
		return true
	}
	return false
}

var paymentReceivedTokens = []string{
	"autopay", "auto pay", "auto-pay", "automatic payment",
	"directpay", "direct pay", "direct-pay", "direct payment",
}

// isPaymentReceived recognizes a card-payoff credit from description text.
func isPaymentReceived(text string) bool {
	if containsAny(text, paymentReceivedTokens...) {
		return true
	}
	return strings.Contains(text, "payment received") && strings.Contains(text, "thank you")
}

var loanPaymentKeywords = []string{
	// credit cards
	"credit card", "creditcard", "cc payment", "card payment",
	"visa payment", "mastercard payment", "amex payment", "american express",
	"discover payment", "chase payment", "capital one", "citi payment",
	// mortgages and home loans
	"mortgage", "home loan", "homeloan", "house payment", "property loan",
	"real estate loan", "home equity", "heloc", "second mortgage",
	// student loans
	"student loan", "studentloan", "education loan", "navient", "sallie mae",
	// car loans
	"car loan", "carloan", "auto loan", "autoloan", "vehicle loan",
	"auto payment", "car payment", "vehicle payment", "car financing",
	// personal and other loans
	"personal loan", "personalloan", "unsecured loan", "signature loan",
	"personal line of credit", "ploc", "loan payment", "loan pay",
	"installment loan", "payday loan", "title loan", "business loan",
	"commercial loan",
}

func isLoanPayment(text string) bool {
	return containsAny(text, loanPaymentKeywords...)
}

var creditCardPaymentKeywords = []string{
	"citi autopay", "citi card", "citicard", "chase autopay", "chase credit",
	"wells fargo autopay", "wf autopay", "bofa autopay", "bank of america",
	"discover autopay", "discover e-payment", "amex autopay", "american express",
	"capital one autopay", "web id:", "ppd id:", "e-payment", "epayment",
}

func isCreditCardPayment(text string) bool {
	return containsAny(text, creditCardPaymentKeywords...)
}

func hasTransferToken(text string) bool {
	return containsAny(text, "check", "wire", "transfer", "ach transfer")
}

func indicatorMatches(ind string, tokens ...string) bool {
	for _, f := range strings.Fields(ind) {
		for _, t := range tokens {
			if f == t {
				return true
			}
		}
	}
	// long-form indicators like "debit card purchase"
	for _, t := range tokens {
		if len(t) > 2 && strings.Contains(ind, t) {
			return true
		}
	}
	return false
}

// amountBound treats absurd magnitudes as absent rather than failing.
var amountBound = decimal.NewFromInt(1_000_000_000)

func boundedAmount(a *decimal.Decimal) *decimal.Decimal {
	if a == nil {
		return nil
	}
	if a.Abs().GreaterThan(amountBound) {
		return nil
	}
	return a
}
