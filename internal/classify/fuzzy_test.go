package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMatchExactAfterNormalization(t *testing.T) {
	var f FuzzyMatcher
	m := f.FindBestMatch("SAFEWAY #1444", []string{"safeway", "walmart"})
	require.NotNil(t, m)
	assert.Equal(t, "safeway", m.Key)
	assert.Equal(t, 1.0, m.Score)
}

func TestFindBestMatchTokenSubsetFloor(t *testing.T) {
	var f FuzzyMatcher
	m := f.FindBestMatch("costco whse bellevue", []string{"costco"})
	require.NotNil(t, m)
	assert.GreaterOrEqual(t, m.Score, 0.75)
}

func TestFindBestMatchRejectsUnrelated(t *testing.T) {
	var f FuzzyMatcher
	assert.Nil(t, f.FindBestMatch("zzxqy vvrq", []string{"safeway"}))
}

func TestFindBestMatchEmptyCandidate(t *testing.T) {
	var f FuzzyMatcher
	assert.Nil(t, f.FindBestMatch("   ", []string{"safeway"}))
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"safeway", "safeway"},
		{"costco whse", "costco"},
		{"trader joes 130", "trader joe"},
		{"zz", "united airlines"},
	}
	for _, p := range pairs {
		a := normalizeForMatching(p[0])
		b := normalizeForMatching(p[1])
		s := similarity(a, b, tokenSet(a))
		assert.GreaterOrEqual(t, s, 0.0, "%v", p)
		assert.LessOrEqual(t, s, 1.0, "%v", p)
	}
}

func TestNormalizeForMatching(t *testing.T) {
	assert.Equal(t, "safeway", normalizeForMatching("THE SAFEWAY #1234 INC."))
	assert.Equal(t, "amazon", normalizeForMatching("Amazon.com"))
	assert.Equal(t, "uber trip", normalizeForMatching("UBER   *TRIP 884422"))
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("puget sound gas bill", "gas"))
	assert.False(t, containsWord("gastropub downtown", "gas"))
}
