package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantIndexSeeded(t *testing.T) {
	idx := NewMerchantIndex()
	assert.Greater(t, idx.Len(), 1000)
	assert.Len(t, idx.Keys(), idx.Len())
}

func TestMerchantIndexAddAndLookup(t *testing.T) {
	idx := NewMerchantIndex()
	n := idx.Len()

	require.NoError(t, idx.Add("  Zorbly Media  ", "Subscriptions"))
	cat, ok := idx.Lookup("ZORBLY MEDIA")
	require.True(t, ok)
	assert.Equal(t, "subscriptions", cat)
	assert.Equal(t, n+1, idx.Len())

	// last write wins
	require.NoError(t, idx.Add("zorbly media", "tech"))
	cat, _ = idx.Lookup("zorbly media")
	assert.Equal(t, "tech", cat)
	assert.Equal(t, n+1, idx.Len())
}

func TestMerchantIndexRejectsBlank(t *testing.T) {
	idx := NewMerchantIndex()
	n := idx.Len()
	assert.ErrorIs(t, idx.Add("", "dining"), ErrInvalidMerchant)
	assert.ErrorIs(t, idx.Add("zorbly", "   "), ErrInvalidMerchant)
	assert.Equal(t, n, idx.Len())
}

func TestMerchantSeedVocabulary(t *testing.T) {
	for merchant, category := range merchantSeed {
		assert.True(t, Categories[category], "merchant %q has category %q outside the vocabulary", merchant, category)
	}
}

// Seed keys must be lower-cased and trimmed, or exact Lookup (which
// lower-cases the query) can never hit them.
func TestMerchantSeedKeysNormalized(t *testing.T) {
	for merchant := range merchantSeed {
		assert.Equal(t, Normalize(merchant), merchant, "seed key %q is not normalized", merchant)
	}

	// spot-check entries that only a normalized key can serve
	idx := NewMerchantIndex()
	for merchant, want := range map[string]string{
		"food 4 less":    "groceries",
		"mariano's":      "groceries",
		"erewhon market": "groceries",
	} {
		cat, ok := idx.Lookup(merchant)
		require.True(t, ok, merchant)
		assert.Equal(t, want, cat)
	}
}
