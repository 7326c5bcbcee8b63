package main

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/anthurium-ai/txn-classify/internal/classify"
)

func TestNewPredictorSeedsWithoutModelPath(t *testing.T) {
	p := newPredictor("", classify.NewMerchantIndex(), zerolog.Nop())
	assert.Greater(t, p.TrainedExamples(), 0)
}

func TestNewPredictorSeedsWhenModelMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "model.gob")
	p := newPredictor(missing, classify.NewMerchantIndex(), zerolog.Nop())
	assert.Greater(t, p.TrainedExamples(), 0)
}
