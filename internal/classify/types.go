package classify

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TxnType is the normalized transaction type.
type TxnType string

const (
	TypeIncome     TxnType = "INCOME"
	TypeExpense    TxnType = "EXPENSE"
	TypePayment    TxnType = "PAYMENT"
	TypeInvestment TxnType = "INVESTMENT"
	TypeTransfer   TxnType = "TRANSFER"
)

// ImportSource identifies which pipeline produced the input record.
type ImportSource string

const (
	SourcePlaid  ImportSource = "PLAID"
	SourceCSV    ImportSource = "CSV"
	SourceExcel  ImportSource = "EXCEL"
	SourcePDF    ImportSource = "PDF"
	SourceManual ImportSource = "MANUAL"
)

// Input is one normalized transaction record as handed over by the import
// pipeline. Optional fields are empty strings; a nil Amount means unknown.
type Input struct {
	MerchantName             string           `json:"merchantName"`
	Description              string           `json:"description"`
	Amount                   *decimal.Decimal `json:"amount"`
	PaymentChannel           string           `json:"paymentChannel"`
	AccountType              string           `json:"accountType"`
	AccountSubtype           string           `json:"accountSubtype"`
	ImporterCategoryPrimary  string           `json:"importerCategoryPrimary"`
	ImporterCategoryDetailed string           `json:"importerCategoryDetailed"`
	TransactionTypeIndicator string           `json:"transactionTypeIndicator"`
	ImportSource             ImportSource     `json:"importSource"`
}

// DetectionResult is one signal's opinion. A nil *DetectionResult means the
// signal abstains; it is not an error.
type DetectionResult struct {
	Category   string
	Confidence float64
	Method     string
	Reason     string
}

// CategoryResult is the engine's final category decision.
type CategoryResult struct {
	Primary    string  `json:"categoryPrimary"`
	Detailed   string  `json:"categoryDetailed"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// TypeResult is the engine's final type decision.
type TypeResult struct {
	Type       TxnType `json:"type"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// AccountClass buckets an account for sign-based type rules.
type AccountClass int

const (
	ClassUnknown AccountClass = iota
	ClassChecking
	ClassCreditCard
	ClassInvestment
	ClassLoan
)

// DeriveAccountClass buckets accountType/accountSubtype text. Order matters:
// "credit line" and "line of credit" are loans, not credit cards.
func DeriveAccountClass(accountType, accountSubtype string) AccountClass {
	t := strings.ToLower(strings.TrimSpace(accountType + " " + accountSubtype))
	if t == "" {
		return ClassUnknown
	}
	switch {
	case strings.Contains(t, "credit line"),
		strings.Contains(t, "line of credit"),
		strings.Contains(t, "loan"),
		strings.Contains(t, "mortgage"):
		return ClassLoan
	case strings.Contains(t, "credit"):
		return ClassCreditCard
	case strings.Contains(t, "investment"),
		strings.Contains(t, "brokerage"),
		strings.Contains(t, "401k"),
		strings.Contains(t, "ira"),
		strings.Contains(t, "retirement"):
		return ClassInvestment
	case strings.Contains(t, "checking"),
		strings.Contains(t, "savings"),
		strings.Contains(t, "depository"),
		strings.Contains(t, "cash management"):
		return ClassChecking
	}
	return ClassUnknown
}

// Categories is the closed vocabulary every primary category is drawn from.
var Categories = map[string]bool{
	"groceries": true, "dining": true, "utilities": true, "transportation": true,
	"travel": true, "shopping": true, "entertainment": true, "subscriptions": true,
	"insurance": true, "tech": true, "home improvement": true, "health": true,
	"healthcare": true, "pet": true, "education": true, "charity": true,
	"income": true, "investment": true, "payment": true, "transfer": true,
	"deposit": true, "credit": true, "cash": true, "rent": true, "service": true,
	"other": true,
}

// expenseCategories drive the sign-based weight adjustment in the combiner.
var expenseCategories = map[string]bool{
	"groceries": true, "dining": true, "transportation": true, "shopping": true,
	"entertainment": true, "healthcare": true, "rent": true, "utilities": true,
	"subscriptions": true, "travel": true, "home improvement": true, "pet": true,
	"tech": true, "other": true, "payment": true, "cash": true, "transfer": true,
}
