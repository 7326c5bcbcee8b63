package classify

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// SemanticMatch is the semantic matcher's opinion.
type SemanticMatch struct {
	Category   string
	Similarity float64
	Method     string
}

// SemanticMatcher is the context-aware similarity capability. Implementations
// live outside the engine; a nil matcher means the signal always abstains.
type SemanticMatcher interface {
	Match(ctx context.Context, merchant, description string, amount *decimal.Decimal,
		channel, accountType, accountSubtype string) (*SemanticMatch, error)
}

// Predictor is the ML inference capability. Confidence is the model's own
// certainty; the engine discards predictions at or below its admission
// threshold.
type Predictor interface {
	Predict(ctx context.Context, merchant, description, amountStr, channel string) (category string, confidence float64, err error)
}

// SignalError marks a failure inside one external signal. It is logged and
// the signal abstains; it never aborts classification.
type SignalError struct {
	Signal string
	Err    error
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("signal %s: %v", e.Signal, e.Err)
}

func (e *SignalError) Unwrap() error { return e.Err }
