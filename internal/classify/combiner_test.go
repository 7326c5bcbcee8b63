package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCombineNoSignals(t *testing.T) {
	assert.Nil(t, combine(nil, nil))
	assert.Nil(t, combine([]*DetectionResult{nil, nil}, dec("-5")))
}

func TestCombineSingleSignalPassesThrough(t *testing.T) {
	r := &DetectionResult{Category: "dining", Confidence: 0.9, Method: methodRule}
	got := combine([]*DetectionResult{r, nil}, dec("-12"))
	require.NotNil(t, got)
	assert.Equal(t, methodRule, got.Method)
	assert.Equal(t, 0.9, got.Confidence)
}

func TestCombineHighConfidenceFuzzyOutweighsRule(t *testing.T) {
	results := []*DetectionResult{
		{Category: "groceries", Confidence: 0.9, Method: methodRule},
		{Category: "shopping", Confidence: 0.95, Method: methodFuzzy},
	}
	got := combine(results, dec("-40"))
	require.NotNil(t, got)
	// fuzzy at 0.95 carries weight 0.7 vs the rule's 0.5
	assert.Equal(t, "shopping", got.Category)
	assert.Equal(t, methodCombined, got.Method)
}

func TestCombineMutesIncomeOnNegativeAmount(t *testing.T) {
	results := []*DetectionResult{
		{Category: "income", Confidence: 0.95, Method: methodML},
		{Category: "groceries", Confidence: 0.6, Method: methodRule},
	}
	got := combine(results, dec("-100"))
	require.NotNil(t, got)
	assert.Equal(t, "groceries", got.Category)
}

func TestCombineNegativeAmountNeverResolvesIncome(t *testing.T) {
	results := []*DetectionResult{
		{Category: "income", Confidence: 0.95, Method: methodML},
		{Category: "income", Confidence: 0.95, Method: methodFuzzy},
	}
	got := combine(results, dec("-100"))
	require.NotNil(t, got)
	assert.Equal(t, "other", got.Category)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestCombineBoostsIncomeOnPositiveAmount(t *testing.T) {
	results := []*DetectionResult{
		{Category: "income", Confidence: 0.6, Method: methodML},
		{Category: "shopping", Confidence: 0.6, Method: methodRule},
	}
	got := combine(results, dec("2500"))
	require.NotNil(t, got)
	assert.Equal(t, "income", got.Category)
}

func TestCombineClampsConfidence(t *testing.T) {
	results := []*DetectionResult{
		{Category: "dining", Confidence: 1.0, Method: methodFuzzy},
		{Category: "dining", Confidence: 0.9, Method: methodRule},
	}
	got := combine(results, dec("-20"))
	require.NotNil(t, got)
	assert.Equal(t, "dining", got.Category)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestCombineDeterministicTieBreak(t *testing.T) {
	results := []*DetectionResult{
		{Category: "tech", Confidence: 0.8, Method: methodRule},
		{Category: "shopping", Confidence: 0.8, Method: methodML},
	}
	first := combine(results, nil)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := combine(results, nil)
		require.NotNil(t, again)
		assert.Equal(t, first.Category, again.Category)
	}
}
