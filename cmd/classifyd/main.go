package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/anthurium-ai/txn-classify/internal/app"
	"github.com/anthurium-ai/txn-classify/internal/classify"
	"github.com/anthurium-ai/txn-classify/internal/config"
	"github.com/anthurium-ai/txn-classify/internal/logger"
	"github.com/anthurium-ai/txn-classify/internal/metrics"
	"github.com/anthurium-ai/txn-classify/internal/predict"
	"github.com/anthurium-ai/txn-classify/internal/semantic"
	"github.com/anthurium-ai/txn-classify/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	index := classify.NewMerchantIndex()
	learned, err := st.All(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, l := range learned {
		if err := index.Add(l.Merchant, l.Category); err != nil {
			log.Warn().Err(err).Str("merchant", l.Merchant).Msg("skipping learned merchant")
		}
	}

	predictor := newPredictor(cfg.ModelPath, index, log)

	matcher := semantic.New(os.Getenv("ANTHROPIC_API_KEY"), cfg.AnthropicModel, categoryList())

	met := metrics.New(func() float64 { return float64(index.Len()) })

	strategies := classify.DefaultStrategies()
	for _, rule := range cfg.CustomRules {
		strategies = append(strategies, classify.ContainsStrategy(rule.Category, rule.Contains))
	}

	var engineOpts = classify.Options{
		Index:           index,
		Strategies:      strategies,
		Predictor:       predictor,
		Log:             log,
		CacheSize:       cfg.CacheSize,
		BreakerFailures: cfg.BreakerFailures,
		BreakerCooldown: time.Duration(cfg.BreakerCooldownSeconds) * time.Second,
		Hooks: classify.Hooks{
			OnClassification: met.Classification,
			OnType:           met.Type,
			OnSignalFailure:  met.SignalFailure,
			OnMemoHit:        met.MemoHit,
			OnBreakerOpen:    met.BreakerOpen,
		},
	}
	if matcher != nil {
		engineOpts.Semantic = matcher
	}
	engine, err := classify.NewEngine(engineOpts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := &app.App{Engine: engine, Store: st, Predictor: predictor, Met: met, Log: log}
	runErr := app.Run(ctx, a, app.Config{Addr: cfg.Addr})

	if cfg.ModelPath != "" && predictor.TrainedExamples() > 0 {
		if err := predictor.Save(cfg.ModelPath); err != nil {
			log.Warn().Err(err).Msg("saving model on shutdown")
		}
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

// newPredictor loads the saved model when one exists, otherwise seeds a fresh
// classifier from the merchant index so cold predictions are non-degenerate.
func newPredictor(modelPath string, index *classify.MerchantIndex, log zerolog.Logger) *predict.Bayes {
	predictor := predict.New(categoryList())
	if modelPath != "" {
		if err := predictor.Load(modelPath); err == nil {
			return predictor
		}
		log.Info().Msg("no saved model, seeding predictor from merchant index")
	}
	index.Each(func(merchant, category string) {
		_ = predictor.Train(category, merchant, "", "", "")
	})
	return predictor
}

func categoryList() []string {
	cats := make([]string, 0, len(classify.Categories))
	for c := range classify.Categories {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
