package classify

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Signal method tags.
const (
	methodRule     = "RULE_BASED"
	methodFuzzy    = "FUZZY_MATCH"
	methodSemantic = "SEMANTIC"
	methodML       = "ML"
	methodCombined = "COMBINED"
	methodNone     = "NONE"
	methodError    = "ERROR"
)

// Detector fuses the category signals: rule-strategy chain, fuzzy
// known-merchant match, semantic match and ML prediction.
type Detector struct {
	Index      *MerchantIndex
	Strategies []Strategy
	Fuzzy      FuzzyMatcher
	Semantic   SemanticMatcher
	Predictor  Predictor
	Log        zerolog.Logger

	// OnSignalFailure is an optional metrics hook, called with the signal
	// name whenever an external signal errors out.
	OnSignalFailure func(signal string)
}

// Detect runs every signal and combines the survivors. A nil return means no
// signal had an opinion.
func (d *Detector) Detect(ctx context.Context, in Input) *DetectionResult {
	merchant := Normalize(in.MerchantName)
	desc := Normalize(in.Description)
	if merchant == "" && desc == "" {
		return nil
	}

	var results []*DetectionResult
	if r := d.ruleSignal(merchant, desc, in.MerchantName); r != nil {
		results = append(results, r)
	}
	if r := d.fuzzySignal(merchant, desc); r != nil {
		results = append(results, r)
	}
	if r := d.semanticSignal(ctx, in, merchant, desc); r != nil {
		results = append(results, r)
	}
	if r := d.mlSignal(ctx, in, merchant, desc); r != nil {
		results = append(results, r)
	}
	return combine(results, in.Amount)
}

func (d *Detector) ruleSignal(merchant, desc, raw string) *DetectionResult {
	cat, name := runStrategies(d.Strategies, merchant, desc, raw)
	if cat == "" {
		return nil
	}
	return &DetectionResult{Category: cat, Confidence: 0.9, Method: methodRule, Reason: "strategy " + name}
}

// fuzzySignal matches merchant text against the known-merchant keys, falling
// back to the description for file-based imports that carry no merchant.
// Never both at once.
func (d *Detector) fuzzySignal(merchant, desc string) *DetectionResult {
	text := merchant
	if text == "" {
		text = desc
	}
	// exact key hit short-circuits the scan
	if cat, ok := d.Index.Lookup(text); ok {
		if discardCollision(cat, text) {
			return nil
		}
		return &DetectionResult{Category: cat, Confidence: 1.0, Method: methodFuzzy, Reason: "exact merchant " + text}
	}
	m := d.Fuzzy.FindBestMatch(text, d.Index.Keys())
	if m == nil {
		return nil
	}
	cat, ok := d.Index.Lookup(m.Key)
	if !ok || cat == "" {
		return nil
	}
	if discardCollision(cat, text) {
		return nil
	}
	return &DetectionResult{Category: cat, Confidence: m.Score, Method: methodFuzzy, Reason: "fuzzy merchant " + m.Key}
}

// discardCollision drops fuzzy hits the seed corpus is known to confuse:
// a store location matching a payroll corporation, and airport fees matching
// a public utility.
func discardCollision(category, candidate string) bool {
	switch category {
	case "income":
		return containsAny(candidate, "whse", "warehouse")
	case "utilities":
		if containsAny(candidate, "airport", "seattleap") {
			return true
		}
		return strings.Contains(candidate, "seattle") && containsAny(candidate, "cart", "chair")
	}
	return false
}

func (d *Detector) semanticSignal(ctx context.Context, in Input, merchant, desc string) *DetectionResult {
	if d.Semantic == nil {
		return nil
	}
	m, err := d.Semantic.Match(ctx, merchant, desc, in.Amount, in.PaymentChannel, in.AccountType, in.AccountSubtype)
	if err != nil {
		d.signalFailed("semantic", err)
		return nil
	}
	if m == nil || m.Category == "" {
		return nil
	}
	return &DetectionResult{Category: m.Category, Confidence: m.Similarity, Method: methodSemantic, Reason: m.Method}
}

func (d *Detector) mlSignal(ctx context.Context, in Input, merchant, desc string) *DetectionResult {
	if d.Predictor == nil {
		return nil
	}
	amountStr := ""
	if in.Amount != nil {
		amountStr = in.Amount.String()
	}
	cat, conf, err := d.Predictor.Predict(ctx, merchant, desc, amountStr, Normalize(in.PaymentChannel))
	if err != nil {
		d.signalFailed("ml", err)
		return nil
	}
	if cat == "" || conf <= mlAdmissionThreshold {
		return nil
	}
	return &DetectionResult{Category: cat, Confidence: conf, Method: methodML, Reason: "model prediction"}
}

func (d *Detector) signalFailed(signal string, err error) {
	d.Log.Warn().Err(&SignalError{Signal: signal, Err: err}).Str("signal", signal).Msg("signal failed, abstaining")
	if d.OnSignalFailure != nil {
		d.OnSignalFailure(signal)
	}
}
