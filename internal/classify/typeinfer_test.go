package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCreditCardDiningBeatsSign(t *testing.T) {
	ti := NewTypeInference()
	got := ti.Infer(Input{
		MerchantName: "TST* BISTRO",
		Amount:       dec("25.00"),
		AccountType:  "credit card",
	}, "dining", "dining")
	assert.Equal(t, TypeExpense, got.Type)
	assert.Equal(t, srcAccountType, got.Source)
	assert.Equal(t, 0.95, got.Confidence)
}

func TestInferCreditCardAutopayCreditIsPayment(t *testing.T) {
	ti := NewTypeInference()
	got := ti.Infer(Input{
		Description: "AUTOPAY PAYMENT - THANK YOU",
		Amount:      dec("250.00"),
		AccountType: "credit card",
	}, "payment", "payment")
	assert.Equal(t, TypePayment, got.Type)
	assert.Equal(t, srcAccountType, got.Source)
}

func TestInferCreditCardNegativeDiningStaysExpense(t *testing.T) {
	ti := NewTypeInference()
	got := ti.Infer(Input{
		MerchantName: "CANLIS RESTAURANT",
		Amount:       dec("-80.00"),
		AccountType:  "credit card",
	}, "dining", "dining")
	assert.Equal(t, TypeExpense, got.Type)
}

func TestInferCreditCardNegativeDefaultsPayment(t *testing.T) {
	ti := NewTypeInference()
	got := ti.Infer(Input{
		Description: "ONLINE PAYMENT",
		Amount:      dec("-300.00"),
		AccountType: "credit card",
	}, "payment", "payment")
	assert.Equal(t, TypePayment, got.Type)
}

func TestInferInvestmentAccount(t *testing.T) {
	ti := NewTypeInference()

	got := ti.Infer(Input{
		Description: "DIVIDEND RECEIVED",
		Amount:      dec("120.00"),
		AccountType: "investment",
	}, "income", "dividend")
	assert.Equal(t, TypeIncome, got.Type)

	got = ti.Infer(Input{
		Description: "CUSTODIAL FEE",
		Amount:      dec("-10.00"),
		AccountType: "brokerage",
	}, "", "")
	assert.Equal(t, TypeExpense, got.Type)

	got = ti.Infer(Input{
		Description: "BUY VTI 12 SHARES",
		Amount:      dec("-2500.00"),
		AccountType: "brokerage",
	}, "investment", "investment")
	assert.Equal(t, TypeInvestment, got.Type)
}

func TestInferLoanAccount(t *testing.T) {
	ti := NewTypeInference()

	got := ti.Infer(Input{
		Description: "MORTGAGE PAYMENT RECEIVED THANK YOU",
		Amount:      dec("1800.00"),
		AccountType: "loan",
	}, "payment", "payment")
	assert.Equal(t, TypePayment, got.Type)
	assert.Equal(t, 0.95, got.Confidence)

	got = ti.Infer(Input{
		Description: "DISBURSEMENT",
		Amount:      dec("5000.00"),
		AccountType: "mortgage",
	}, "", "")
	assert.Equal(t, TypePayment, got.Type)
	assert.Equal(t, 0.85, got.Confidence)

	got = ti.Infer(Input{
		Description: "LATE FEE",
		Amount:      dec("-35.00"),
		AccountType: "loan",
	}, "", "")
	assert.Equal(t, TypeExpense, got.Type)
}

func TestInferCheckingAccount(t *testing.T) {
	ti := NewTypeInference()

	got := ti.Infer(Input{
		Description: "PAYROLL DIRECT DEPOSIT",
		Amount:      dec("1500.00"),
		AccountType: "checking",
	}, "income", "salary")
	assert.Equal(t, TypeIncome, got.Type)

	got = ti.Infer(Input{
		Description: "CITI AUTOPAY WEB ID: 1234",
		Amount:      dec("-600.00"),
		AccountType: "checking",
	}, "payment", "payment")
	assert.Equal(t, TypePayment, got.Type)

	got = ti.Infer(Input{
		Description: "GROCERY OUTLET",
		Amount:      dec("-60.00"),
		AccountType: "checking",
	}, "groceries", "groceries")
	assert.Equal(t, TypeExpense, got.Type)
}

func TestInferIndicatorOverride(t *testing.T) {
	ti := NewTypeInference()

	got := ti.Infer(Input{
		Description:              "MISC ENTRY",
		TransactionTypeIndicator: "CR",
	}, "", "")
	assert.Equal(t, TypeIncome, got.Type)
	assert.Equal(t, srcHybrid, got.Source)

	got = ti.Infer(Input{
		Description:              "MISC ENTRY",
		TransactionTypeIndicator: "debit card purchase",
	}, "", "")
	assert.Equal(t, TypeExpense, got.Type)
}

func TestInferLoanLexiconWithoutAccount(t *testing.T) {
	ti := NewTypeInference()
	got := ti.Infer(Input{
		Description: "NAVIENT STUDENT LOAN PMT",
		Amount:      dec("-220.00"),
	}, "", "")
	assert.Equal(t, TypePayment, got.Type)
	assert.Equal(t, srcHybrid, got.Source)
}

func TestInferBaselineAndAmountBound(t *testing.T) {
	ti := NewTypeInference()

	// positive amount with non-expense category defaults to income
	got := ti.Infer(Input{
		Description: "MYSTERY CREDIT",
		Amount:      dec("40.00"),
	}, "", "")
	assert.Equal(t, TypeIncome, got.Type)
	assert.Equal(t, srcAmount, got.Source)

	// absurd magnitudes are treated as absent
	got = ti.Infer(Input{
		Description: "GLITCHED ROW",
		Amount:      dec("2000000000"),
	}, "", "")
	assert.Equal(t, TypeExpense, got.Type)
	assert.Equal(t, srcDefault, got.Source)
}

func TestDeriveAccountClass(t *testing.T) {
	assert.Equal(t, ClassLoan, DeriveAccountClass("credit", "line of credit"))
	assert.Equal(t, ClassLoan, DeriveAccountClass("loan", "mortgage"))
	assert.Equal(t, ClassCreditCard, DeriveAccountClass("credit", "credit card"))
	assert.Equal(t, ClassInvestment, DeriveAccountClass("investment", "brokerage"))
	assert.Equal(t, ClassChecking, DeriveAccountClass("depository", "checking"))
	assert.Equal(t, ClassUnknown, DeriveAccountClass("", ""))
}
