package predict

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCategories = []string{"dining", "groceries", "transportation"}

func TestPredictAbstainsUntrained(t *testing.T) {
	b := New(testCategories)
	cat, conf, err := b.Predict(context.Background(), "starbucks", "", "-5.50", "in store")
	require.NoError(t, err)
	assert.Equal(t, "", cat)
	assert.Equal(t, 0.0, conf)
}

func TestTrainAndPredict(t *testing.T) {
	b := New(testCategories)
	require.NoError(t, b.Train("dining", "starbucks", "coffee", "-5.50", "in store"))
	require.NoError(t, b.Train("dining", "chipotle", "lunch", "-12.00", "in store"))
	require.NoError(t, b.Train("groceries", "safeway", "weekly groceries", "-85.00", "in store"))
	require.NoError(t, b.Train("transportation", "shell", "fuel", "-40.00", "in store"))

	cat, conf, err := b.Predict(context.Background(), "starbucks", "coffee", "-5.50", "in store")
	require.NoError(t, err)
	assert.Equal(t, "dining", cat)
	assert.Greater(t, conf, 0.3)
	assert.LessOrEqual(t, conf, 1.0)

	assert.Equal(t, 4, b.TrainedExamples())
}

func TestTrainRejectsUnknownCategory(t *testing.T) {
	b := New(testCategories)
	err := b.Train("astrology", "zorbly", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPredictHonorsContextCancellation(t *testing.T) {
	b := New(testCategories)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := b.Predict(ctx, "starbucks", "", "", "")
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")

	b := New(testCategories)
	require.NoError(t, b.Train("dining", "starbucks", "coffee", "-5.50", "in store"))
	require.NoError(t, b.Train("groceries", "safeway", "produce", "-60.00", "in store"))
	require.NoError(t, b.Save(path))

	restored := New(testCategories)
	require.NoError(t, restored.Load(path))
	cat, _, err := restored.Predict(context.Background(), "starbucks", "coffee", "-5.50", "in store")
	require.NoError(t, err)
	assert.Equal(t, "dining", cat)
}

func TestAmountToken(t *testing.T) {
	assert.Equal(t, "amt:neg:micro", amountToken("-5.50"))
	assert.Equal(t, "amt:neg:small", amountToken("-42"))
	assert.Equal(t, "amt:pos:medium", amountToken("250"))
	assert.Equal(t, "amt:pos:large", amountToken("2500"))
	assert.Equal(t, "amt:pos:huge", amountToken("99999"))
	assert.Equal(t, "", amountToken(""))
	assert.Equal(t, "", amountToken("not a number"))
}
