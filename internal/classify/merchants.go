package classify

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrInvalidMerchant is returned when Add gets a blank merchant or category.
// The index is not mutated in that case.
var ErrInvalidMerchant = errors.New("merchant and category must be non-blank")

// MerchantIndex maps lower-cased merchant strings to categories. Lookups are
// concurrent; writes (runtime learning) are rare and serialized.
type MerchantIndex struct {
	mu sync.RWMutex
	m  map[string]string

	// keys is a cached snapshot for fuzzy scans, rebuilt on write.
	keys []string
}

// NewMerchantIndex returns an index seeded with the built-in merchant table.
func NewMerchantIndex() *MerchantIndex {
	m := make(map[string]string, len(merchantSeed))
	for k, v := range merchantSeed {
		m[k] = v
	}
	idx := &MerchantIndex{m: m}
	idx.rebuildKeys()
	return idx
}

// Add upserts a merchant mapping. The key is lower-cased and trimmed; the
// last write wins. Blank merchant or category is rejected without mutation.
func (idx *MerchantIndex) Add(merchant, category string) error {
	merchant = Normalize(merchant)
	category = Normalize(category)
	if merchant == "" || category == "" {
		return ErrInvalidMerchant
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.m[merchant] = category
	idx.rebuildKeys()
	return nil
}

// Lookup returns the category for an exact (normalized) merchant key.
func (idx *MerchantIndex) Lookup(merchant string) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	cat, ok := idx.m[strings.ToLower(strings.TrimSpace(merchant))]
	return cat, ok
}

// Keys returns the current key snapshot for fuzzy matching. Callers must not
// modify the returned slice.
func (idx *MerchantIndex) Keys() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.keys
}

// Len reports the number of known merchants.
func (idx *MerchantIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.m)
}

// Each calls fn for every entry. Used to seed the predictor at startup.
func (idx *MerchantIndex) Each(fn func(merchant, category string)) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	for k, v := range idx.m {
		fn(k, v)
	}
}

func (idx *MerchantIndex) rebuildKeys() {
	keys := make([]string, 0, len(idx.m))
	for k := range idx.m {
		keys = append(keys, k)
	}
	idx.keys = keys
}
