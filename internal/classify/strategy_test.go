package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStrategyChain(t *testing.T) {
	tests := []struct {
		merchant string
		desc     string
		want     string
	}{
		{"SAFEWAY #1444", "", "groceries"},
		{"COSTCO WHSE #44", "", "groceries"},
		{"COSTCO GAS #1021", "", "transportation"},
		{"TRADER JOE'S #130", "", "groceries"},
		{"TST* THE PIZZA JOINT", "", "dining"},
		{"SQ *COFFEE CART", "", "dining"},
		{"MCDONALD'S F32144", "", "dining"},
		{"STARBUCKS STORE 001", "", "dining"},
		{"PUGET SOUND ENERGY BILLPAY", "", "utilities"},
		{"CITY OF BELLEVUE UTILITY", "", "utilities"},
		{"AT&T PAYMENT", "", "utilities"},
		{"COMCAST XFINITY", "", "utilities"},
		{"SEATTLEAP CART 61", "", "transportation"},
		{"PAYBYPHONE PARKING", "", "transportation"},
		{"SHELL OIL 57442", "", "transportation"},
		{"NETFLIX STREAMING", "", "entertainment"},
		{"HOME DEPOT 4712", "", "home improvement"},
		{"ANTHROPIC BILLING", "", "tech"},
		{"ALASKA AIR 0272", "", "travel"},
		{"MARRIOTT DOWNTOWN", "", "travel"},
		{"WALGREENS #05512", "", "healthcare"},
		{"GRE EXAM FEE", "", "education"},
		{"SAT REGISTRATION", "", "education"},
		{"SATURN PARKING GARAGE", "", "transportation"},
		{"NORDSTROM RACK 441", "", "shopping"},
		{"PETCO 1402", "", "pet"},
		{"GOFUNDME DONATION", "", "charity"},
		{"ACH CREDIT 9912", "", ""},
	}
	strategies := DefaultStrategies()
	for _, tc := range tests {
		t.Run(tc.merchant, func(t *testing.T) {
			got, _ := runStrategies(strategies, Normalize(tc.merchant), Normalize(tc.desc), tc.merchant)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStrategiesRequireMerchant(t *testing.T) {
	got, name := runStrategies(DefaultStrategies(), "", "netflix monthly subscription", "")
	assert.Equal(t, "", got)
	assert.Equal(t, "", name)
}

func TestContainsStrategy(t *testing.T) {
	s := ContainsStrategy("Subscriptions", []string{"ZORBLY", ""})
	assert.Equal(t, "subscriptions", s.Detect("zorbly media", "", "ZORBLY MEDIA"))
	assert.Equal(t, "", s.Detect("acme corp", "", "ACME CORP"))
}
