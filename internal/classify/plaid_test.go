package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPlaidCategoryDetailedWinsOverPrimary(t *testing.T) {
	p, d := MapPlaidCategory("FOOD_AND_DRINK", "RESTAURANTS", "", "")
	assert.Equal(t, "dining", p)
	assert.Equal(t, "dining", d)

	p, d = MapPlaidCategory("GENERAL_MERCHANDISE", "ELECTRONICS", "", "")
	assert.Equal(t, "shopping", p)
	assert.Equal(t, "shopping", d)
}

func TestMapPlaidCategoryPrimaryOnly(t *testing.T) {
	p, d := MapPlaidCategory("TRANSFER_IN", "", "", "")
	assert.Equal(t, "income", p)
	assert.Equal(t, "income", d)

	p, _ = MapPlaidCategory("RENT_AND_UTILITIES", "", "", "")
	assert.Equal(t, "rent", p)
}

func TestMapPlaidCategoryUnknownLabelPassesThrough(t *testing.T) {
	p, _ := MapPlaidCategory("SOMETHING_NEW", "", "", "")
	assert.Equal(t, "SOMETHING_NEW", p)

	p, _ = MapPlaidCategory("UNKNOWN_CATEGORY", "", "", "")
	assert.Equal(t, "other", p)
}

func TestMapPlaidCategoryInvestmentTextOverride(t *testing.T) {
	p, d := MapPlaidCategory("ENTERTAINMENT", "", "CD DEPOSIT RENEWAL", "")
	assert.Equal(t, "investment", p)
	assert.Equal(t, "investment", d)

	// a real entertainment label without investment text survives
	p, _ = MapPlaidCategory("ENTERTAINMENT", "", "CINEMARK 17", "")
	assert.Equal(t, "entertainment", p)
}

func TestMapPlaidCategoryTextFallbacks(t *testing.T) {
	_, d := MapPlaidCategory("", "", "STARBUCKS 7710", "")
	assert.Equal(t, "dining", d)

	_, d = MapPlaidCategory("", "", "", "uber trip to airport")
	assert.Equal(t, "transportation", d)

	p, d := MapPlaidCategory("", "", "", "")
	assert.Equal(t, "other", p)
	assert.Equal(t, "other", d)
}
