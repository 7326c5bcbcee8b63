package classify

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	category   string
	confidence float64
	err        error
}

func (s stubPredictor) Predict(context.Context, string, string, string, string) (string, float64, error) {
	return s.category, s.confidence, s.err
}

type stubSemantic struct {
	match *SemanticMatch
	err   error
}

func (s stubSemantic) Match(context.Context, string, string, *decimal.Decimal, string, string, string) (*SemanticMatch, error) {
	return s.match, s.err
}

func emptyIndex() *MerchantIndex {
	return &MerchantIndex{m: map[string]string{}}
}

func TestDetectAbstainsOnEmptyText(t *testing.T) {
	d := &Detector{Index: emptyIndex(), Strategies: DefaultStrategies(), Log: zerolog.Nop()}
	assert.Nil(t, d.Detect(context.Background(), Input{Amount: dec("-5")}))
}

func TestDetectMLAdmissionThreshold(t *testing.T) {
	in := Input{MerchantName: "ZZQX VQY", Amount: dec("-10")}

	below := &Detector{
		Index:      emptyIndex(),
		Strategies: DefaultStrategies(),
		Predictor:  stubPredictor{category: "tech", confidence: 0.29},
		Log:        zerolog.Nop(),
	}
	assert.Nil(t, below.Detect(context.Background(), in))

	above := &Detector{
		Index:      emptyIndex(),
		Strategies: DefaultStrategies(),
		Predictor:  stubPredictor{category: "tech", confidence: 0.31},
		Log:        zerolog.Nop(),
	}
	got := above.Detect(context.Background(), in)
	require.NotNil(t, got)
	assert.Equal(t, "tech", got.Category)
	assert.Equal(t, 0.31, got.Confidence)
	assert.Equal(t, methodML, got.Method)
}

func TestDetectSignalFailureAbstains(t *testing.T) {
	var failed []string
	d := &Detector{
		Index:      emptyIndex(),
		Strategies: DefaultStrategies(),
		Semantic:   stubSemantic{err: assert.AnError},
		Predictor:  stubPredictor{err: assert.AnError},
		Log:        zerolog.Nop(),
		OnSignalFailure: func(signal string) {
			failed = append(failed, signal)
		},
	}
	got := d.Detect(context.Background(), Input{MerchantName: "ZZQX VQY"})
	assert.Nil(t, got)
	assert.ElementsMatch(t, []string{"semantic", "ml"}, failed)
}

func TestDetectExactMerchantHit(t *testing.T) {
	idx := emptyIndex()
	require.NoError(t, idx.Add("Zorbly Coffee", "dining"))
	d := &Detector{Index: idx, Strategies: nil, Log: zerolog.Nop()}

	got := d.Detect(context.Background(), Input{MerchantName: "Zorbly Coffee"})
	require.NotNil(t, got)
	assert.Equal(t, "dining", got.Category)
	assert.Equal(t, 1.0, got.Confidence)
	assert.Equal(t, methodFuzzy, got.Method)
}

func TestDetectFuzzyFallsBackToDescription(t *testing.T) {
	idx := emptyIndex()
	require.NoError(t, idx.Add("puget sound energy", "utilities"))
	d := &Detector{Index: idx, Strategies: nil, Log: zerolog.Nop()}

	got := d.Detect(context.Background(), Input{Description: "PUGET SOUND ENERGY BILLPAY 4412"})
	require.NotNil(t, got)
	assert.Equal(t, "utilities", got.Category)
}

func TestDiscardCollisionGuards(t *testing.T) {
	assert.True(t, discardCollision("income", "costco whse #44"))
	assert.True(t, discardCollision("utilities", "seattleap cart 61"))
	assert.True(t, discardCollision("utilities", "seattle airport chair"))
	assert.False(t, discardCollision("groceries", "costco whse #44"))
	assert.False(t, discardCollision("utilities", "seattle city light"))
}
