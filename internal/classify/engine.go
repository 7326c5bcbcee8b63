package classify

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

// Sentinel errors for callers composing the engine into a service.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSignal     = errors.New("no signal produced a category")
)

// Hooks are optional metrics callbacks. Nil fields are skipped.
type Hooks struct {
	OnClassification func(source string)
	OnType           func(source string)
	OnSignalFailure  func(signal string)
	OnMemoHit        func()
	OnBreakerOpen    func(name string)
}

// Options configures an Engine. Zero values fall back to built-in defaults.
type Options struct {
	Index      *MerchantIndex
	Strategies []Strategy
	Semantic   SemanticMatcher
	Predictor  Predictor
	Log        zerolog.Logger

	// CacheSize is the memoization LRU capacity. <= 0 picks the default.
	CacheSize int
	// BreakerFailures is the consecutive-failure count that opens the
	// breaker around the semantic and ML signals. <= 0 picks the default.
	BreakerFailures uint32
	// BreakerCooldown is the open-state duration before a retry probe.
	BreakerCooldown time.Duration

	Hooks Hooks
}

const (
	defaultCacheSize       = 4096
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second
)

type memoValue struct {
	cat CategoryResult
	typ TypeResult
}

// Engine is the signal-fusion classifier. It is safe for concurrent use.
type Engine struct {
	index      *MerchantIndex
	strategies []Strategy
	detector   *Detector
	reasoner   *Reasoner
	types      *TypeInference
	memo       *lru.Cache[string, memoValue]
	log        zerolog.Logger
	hooks      Hooks
}

// NewEngine wires the full pipeline. Semantic and ML callers are wrapped in a
// shared-policy circuit breaker so a flapping backend degrades to abstention
// instead of adding latency to every request.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Index == nil {
		opts.Index = NewMerchantIndex()
	}
	if opts.Strategies == nil {
		opts.Strategies = DefaultStrategies()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = defaultBreakerFailures
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = defaultBreakerCooldown
	}

	memo, err := lru.New[string, memoValue](opts.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "memo cache")
	}

	semantic := opts.Semantic
	if semantic != nil {
		semantic = &breakerSemantic{
			inner: semantic,
			cb:    newBreaker("semantic", opts),
		}
	}
	predictor := opts.Predictor
	if predictor != nil {
		predictor = &breakerPredictor{
			inner: predictor,
			cb:    newBreaker("ml", opts),
		}
	}

	e := &Engine{
		index:      opts.Index,
		strategies: opts.Strategies,
		reasoner:   NewReasoner(),
		types:      NewTypeInference(),
		memo:       memo,
		log:        opts.Log,
		hooks:      opts.Hooks,
	}
	e.detector = &Detector{
		Index:           opts.Index,
		Strategies:      opts.Strategies,
		Semantic:        semantic,
		Predictor:       predictor,
		Log:             opts.Log,
		OnSignalFailure: opts.Hooks.OnSignalFailure,
	}
	return e, nil
}

func newBreaker(name string, opts Options) *gobreaker.CircuitBreaker {
	onOpen := opts.Hooks.OnBreakerOpen
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: opts.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen && onOpen != nil {
				onOpen(name)
			}
		},
	})
}

// Classify resolves one transaction. It never returns an error: an internal
// panic yields the ERROR result, a fully empty input the NONE result.
func (e *Engine) Classify(ctx context.Context, in Input) (cat CategoryResult, typ TypeResult) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Msg("classification panicked")
			cat = CategoryResult{Primary: "other", Detailed: "other", Source: methodError, Confidence: 0}
			typ = TypeResult{Type: TypeExpense, Source: methodError, Confidence: 0}
		}
	}()

	in.Amount = boundedAmount(in.Amount)

	if isEmptyInput(in) {
		return CategoryResult{Primary: "other", Detailed: "other", Source: methodNone, Confidence: 0},
			TypeResult{Type: TypeExpense, Source: srcDefault, Confidence: 0.5}
	}

	key := memoKey(in)
	if v, ok := e.memo.Get(key); ok {
		if e.hooks.OnMemoHit != nil {
			e.hooks.OnMemoHit()
		}
		return v.cat, v.typ
	}

	cat, typ = e.classify(ctx, in)
	e.memo.Add(key, memoValue{cat: cat, typ: typ})

	if e.hooks.OnClassification != nil {
		e.hooks.OnClassification(cat.Source)
	}
	if e.hooks.OnType != nil {
		e.hooks.OnType(typ.Source)
	}
	e.log.Debug().
		Str("merchant", in.MerchantName).
		Str("category", cat.Primary).
		Str("categorySource", cat.Source).
		Str("type", string(typ.Type)).
		Str("typeSource", typ.Source).
		Msg("classified")
	return cat, typ
}

func (e *Engine) classify(ctx context.Context, in Input) (CategoryResult, TypeResult) {
	merchant := Normalize(in.MerchantName)
	desc := Normalize(in.Description)

	importerPrimary := Normalize(in.ImporterCategoryPrimary)
	importerDetailed := Normalize(in.ImporterCategoryDetailed)
	if in.ImportSource == SourcePlaid && (importerPrimary != "" || importerDetailed != "") {
		p, d := MapPlaidCategory(in.ImporterCategoryPrimary, in.ImporterCategoryDetailed, in.MerchantName, in.Description)
		importerPrimary, importerDetailed = Normalize(p), Normalize(d)
	}

	detection := e.detector.Detect(ctx, in)

	state := &reasonerState{
		importerPrimary:  importerPrimary,
		importerDetailed: importerDetailed,
		parserCategory:   e.parserCategory(in, merchant, desc, importerPrimary),
		accountHint:      accountCategoryHint(DeriveAccountClass(in.AccountType, in.AccountSubtype), in.AccountType, in.AccountSubtype),
		merchant:         merchant,
		desc:             desc,
		combined:         strings.TrimSpace(merchant + " " + desc),
		amount:           in.Amount,
		channel:          Normalize(in.PaymentChannel),
		source:           in.ImportSource,
		class:            DeriveAccountClass(in.AccountType, in.AccountSubtype),
	}
	if detection != nil {
		state.mlCategory = detection.Category
		state.mlConfidence = detection.Confidence
	}

	cat := e.reasoner.Reason(state)
	typ := e.types.Infer(in, cat.Primary, cat.Detailed)
	return cat, typ
}

// parserCategory supplies the parser-side signal: file-based imports carry
// the category their parser extracted, while Plaid and manual entries have
// no parser so the rule chain stands in.
func (e *Engine) parserCategory(in Input, merchant, desc, importerPrimary string) string {
	switch in.ImportSource {
	case SourceCSV, SourceExcel, SourcePDF:
		return importerPrimary
	default:
		cat, _ := runStrategies(e.strategies, merchant, desc, in.MerchantName)
		return cat
	}
}

// Learn upserts a merchant mapping into the index and invalidates memoized
// decisions that may now be stale. The category must be in the vocabulary.
func (e *Engine) Learn(merchant, category string) error {
	if !Categories[Normalize(category)] {
		return errors.Wrapf(ErrInvalidInput, "unknown category %q", category)
	}
	if err := e.index.Add(merchant, category); err != nil {
		return err
	}
	e.memo.Purge()
	return nil
}

// KnownMerchants reports the current index size.
func (e *Engine) KnownMerchants() int {
	return e.index.Len()
}

func isEmptyInput(in Input) bool {
	return strings.TrimSpace(in.MerchantName) == "" &&
		strings.TrimSpace(in.Description) == "" &&
		strings.TrimSpace(in.ImporterCategoryPrimary) == "" &&
		in.Amount == nil
}

// memoKey folds every input field into the cache key so two records differing
// in any signal never share a decision.
func memoKey(in Input) string {
	amount := ""
	if in.Amount != nil {
		amount = in.Amount.String()
	}
	parts := []string{
		in.MerchantName, in.Description, amount, in.PaymentChannel,
		in.AccountType, in.AccountSubtype,
		in.ImporterCategoryPrimary, in.ImporterCategoryDetailed,
		in.TransactionTypeIndicator, string(in.ImportSource),
	}
	return strings.Join(parts, "\x1f")
}

// breakerSemantic gates a SemanticMatcher behind a circuit breaker.
type breakerSemantic struct {
	inner SemanticMatcher
	cb    *gobreaker.CircuitBreaker
}

func (b *breakerSemantic) Match(ctx context.Context, merchant, description string, amount *decimal.Decimal, channel, accountType, accountSubtype string) (*SemanticMatch, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Match(ctx, merchant, description, amount, channel, accountType, accountSubtype)
	})
	if err != nil {
		return nil, err
	}
	m, _ := v.(*SemanticMatch)
	return m, nil
}

// breakerPredictor gates a Predictor behind a circuit breaker.
type breakerPredictor struct {
	inner Predictor
	cb    *gobreaker.CircuitBreaker
}

type prediction struct {
	category   string
	confidence float64
}

func (b *breakerPredictor) Predict(ctx context.Context, merchant, description, amountStr, channel string) (string, float64, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		cat, conf, err := b.inner.Predict(ctx, merchant, description, amountStr, channel)
		return prediction{category: cat, confidence: conf}, err
	})
	if err != nil {
		return "", 0, err
	}
	p := v.(prediction)
	return p.category, p.confidence, nil
}
