package classify

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	opts.Log = zerolog.Nop()
	e, err := NewEngine(opts)
	require.NoError(t, err)
	return e
}

func TestClassifyEmptyInput(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, typ := e.Classify(context.Background(), Input{})
	assert.Equal(t, "other", cat.Primary)
	assert.Equal(t, methodNone, cat.Source)
	assert.Equal(t, 0.0, cat.Confidence)
	assert.Equal(t, TypeExpense, typ.Type)
}

func TestClassifyIdempotent(t *testing.T) {
	memoHits := 0
	e := newTestEngine(t, Options{Hooks: Hooks{OnMemoHit: func() { memoHits++ }}})
	in := Input{
		MerchantName: "COSTCO WHSE #44",
		Amount:       dec("-120.50"),
		AccountType:  "credit card",
		ImportSource: SourceManual,
	}
	cat1, typ1 := e.Classify(context.Background(), in)
	cat2, typ2 := e.Classify(context.Background(), in)
	assert.Equal(t, cat1, cat2)
	assert.Equal(t, typ1, typ2)
	assert.Equal(t, 1, memoHits)
}

func TestClassifyCostcoWarehouse(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, typ := e.Classify(context.Background(), Input{
		MerchantName: "COSTCO WHSE #44",
		Amount:       dec("-120.50"),
		AccountType:  "credit card",
		ImportSource: SourceManual,
	})
	assert.Equal(t, "groceries", cat.Primary)
	assert.Equal(t, TypePayment, typ.Type) // negative on a card account
}

func TestClassifyWalgreensIsHealthcare(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, _ := e.Classify(context.Background(), Input{
		MerchantName: "WALGREENS #05512",
		Amount:       dec("-23.10"),
		ImportSource: SourceManual,
	})
	assert.Equal(t, "healthcare", cat.Primary)
}

func TestClassifyParkingGarageKeepsImporterCategory(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, _ := e.Classify(context.Background(), Input{
		MerchantName:            "SATURN PARKING GARAGE",
		Amount:                  dec("-12.00"),
		ImporterCategoryPrimary: "transportation",
		ImportSource:            SourceCSV,
	})
	assert.Equal(t, "transportation", cat.Primary)
}

func TestClassifySeattleAirportCart(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, _ := e.Classify(context.Background(), Input{
		MerchantName: "SEATTLEAP CART 61",
		Amount:       dec("-6.00"),
		ImportSource: SourceManual,
	})
	assert.Equal(t, "transportation", cat.Primary)
}

func TestClassifyCheckingPayroll(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, typ := e.Classify(context.Background(), Input{
		Description:  "PAYROLL DIRECT DEPOSIT",
		Amount:       dec("1500.00"),
		AccountType:  "checking",
		ImportSource: SourceManual,
	})
	assert.Equal(t, "income", cat.Primary)
	assert.Equal(t, "salary", cat.Detailed)
	assert.Equal(t, TypeIncome, typ.Type)
}

func TestClassifyCreditCardAutopay(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, typ := e.Classify(context.Background(), Input{
		Description:  "AUTOPAY PAYMENT - THANK YOU",
		Amount:       dec("250.00"),
		AccountType:  "credit card",
		ImportSource: SourceManual,
	})
	assert.Equal(t, "payment", cat.Primary)
	assert.Equal(t, TypePayment, typ.Type)
}

func TestClassifySignInvariant(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, _ := e.Classify(context.Background(), Input{
		MerchantName:            "ZZQX VQY",
		Amount:                  dec("-120.00"),
		ImporterCategoryPrimary: "income",
		ImportSource:            SourceCSV,
	})
	assert.NotEqual(t, "income", cat.Primary)
}

func TestClassifyConfidenceBounds(t *testing.T) {
	e := newTestEngine(t, Options{})
	inputs := []Input{
		{MerchantName: "SAFEWAY #1444", Amount: dec("-54.20"), ImportSource: SourceManual},
		{MerchantName: "TST* BISTRO", Amount: dec("25.00"), AccountType: "credit card"},
		{Description: "wire transfer out", Amount: dec("-900"), ImporterCategoryPrimary: "payment", ImportSource: SourceCSV},
		{MerchantName: "ZZQX VQY"},
		{Description: "AUTOPAY PAYMENT - THANK YOU", Amount: dec("250"), AccountType: "credit card"},
	}
	for _, in := range inputs {
		cat, typ := e.Classify(context.Background(), in)
		assert.GreaterOrEqual(t, cat.Confidence, 0.0)
		assert.LessOrEqual(t, cat.Confidence, 1.0)
		assert.GreaterOrEqual(t, typ.Confidence, 0.0)
		assert.LessOrEqual(t, typ.Confidence, 1.0)
		assert.True(t, Categories[cat.Primary] || cat.Primary != "", "primary must be set")
	}
}

func TestClassifyPlaidMapping(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, _ := e.Classify(context.Background(), Input{
		MerchantName:             "ZZQX VQY",
		Amount:                   dec("-18.40"),
		ImporterCategoryPrimary:  "FOOD_AND_DRINK",
		ImporterCategoryDetailed: "RESTAURANTS",
		ImportSource:             SourcePlaid,
	})
	assert.Equal(t, "dining", cat.Primary)
	assert.Equal(t, catSrcPlaid, cat.Source)
}

func TestClassifyAmountBound(t *testing.T) {
	e := newTestEngine(t, Options{})
	cat, typ := e.Classify(context.Background(), Input{
		MerchantName: "SAFEWAY #1444",
		Amount:       dec("99000000000"),
		ImportSource: SourceManual,
	})
	assert.Equal(t, "groceries", cat.Primary)
	// out-of-band amount is ignored for type inference
	assert.Equal(t, TypeExpense, typ.Type)
}

func TestLearnRejectsUnknownCategory(t *testing.T) {
	e := newTestEngine(t, Options{})
	err := e.Learn("Zorbly Media", "weird-new-category")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLearnChangesClassification(t *testing.T) {
	e := newTestEngine(t, Options{})
	in := Input{MerchantName: "Zorbly Media Holdings", Amount: dec("-9.99"), ImportSource: SourceManual}

	before, _ := e.Classify(context.Background(), in)
	require.NoError(t, e.Learn("Zorbly Media Holdings", "subscriptions"))
	after, _ := e.Classify(context.Background(), in)

	assert.NotEqual(t, before, after)
	assert.Equal(t, "subscriptions", after.Primary)
}

func TestEngineMetricsHooks(t *testing.T) {
	var catSources, typSources []string
	e := newTestEngine(t, Options{Hooks: Hooks{
		OnClassification: func(s string) { catSources = append(catSources, s) },
		OnType:           func(s string) { typSources = append(typSources, s) },
	}})
	e.Classify(context.Background(), Input{MerchantName: "SAFEWAY #1444", Amount: dec("-10"), ImportSource: SourceManual})
	assert.Len(t, catSources, 1)
	assert.Len(t, typSources, 1)
}

func TestKnownMerchants(t *testing.T) {
	e := newTestEngine(t, Options{})
	n := e.KnownMerchants()
	require.NoError(t, e.Learn("Zorbly Media", "subscriptions"))
	assert.Equal(t, n+1, e.KnownMerchants())
}
