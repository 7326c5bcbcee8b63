package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "classify.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestUpsertAndAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, "zorbly media", "subscriptions"))
	require.NoError(t, s.Upsert(ctx, "acme tools", "home improvement"))

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byMerchant := map[string]string{}
	for _, l := range all {
		byMerchant[l.Merchant] = l.Category
	}
	assert.Equal(t, "subscriptions", byMerchant["zorbly media"])
	assert.Equal(t, "home improvement", byMerchant["acme tools"])
}

func TestUpsertLastWriteWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, "zorbly media", "subscriptions"))
	require.NoError(t, s.Upsert(ctx, "zorbly media", "tech"))

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "tech", all[0].Category)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate(context.Background()))
}
