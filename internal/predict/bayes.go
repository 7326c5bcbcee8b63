package predict

import (
	"context"
	"strings"
	"sync"

	"github.com/jbrukh/bayesian"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrUnknownCategory is returned by Train for a category outside the
// vocabulary the classifier was constructed with.
var ErrUnknownCategory = errors.New("category not in classifier vocabulary")

// Bayes is a naive-Bayes category predictor over a fixed vocabulary. It
// satisfies the engine's Predictor interface and abstains (empty category)
// until it has seen at least one training example.
type Bayes struct {
	mu      sync.RWMutex
	c       *bayesian.Classifier
	classes map[bayesian.Class]bool
	trained int
}

// New builds an untrained classifier over the given categories.
func New(categories []string) *Bayes {
	classes := make([]bayesian.Class, 0, len(categories))
	set := make(map[bayesian.Class]bool, len(categories))
	for _, c := range categories {
		cl := bayesian.Class(c)
		classes = append(classes, cl)
		set[cl] = true
	}
	return &Bayes{c: bayesian.NewClassifier(classes...), classes: set}
}

// Train adds one labeled example.
func (b *Bayes) Train(category, merchant, description, amountStr, channel string) error {
	cl := bayesian.Class(strings.ToLower(strings.TrimSpace(category)))
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.classes[cl] {
		return errors.Wrapf(ErrUnknownCategory, "%q", category)
	}
	b.c.Learn(tokens(merchant, description, amountStr, channel), cl)
	b.trained++
	return nil
}

// Predict returns the winning class and its posterior probability. An
// untrained classifier abstains rather than guessing uniformly.
func (b *Bayes) Predict(ctx context.Context, merchant, description, amountStr, channel string) (string, float64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.trained == 0 {
		return "", 0, nil
	}
	doc := tokens(merchant, description, amountStr, channel)
	if len(doc) == 0 {
		return "", 0, nil
	}
	scores, inx, _ := b.c.ProbScores(doc)
	if inx < 0 || inx >= len(scores) {
		return "", 0, nil
	}
	conf := scores[inx]
	if conf != conf { // NaN from an all-unknown document
		return "", 0, nil
	}
	classes := b.c.Classes
	return string(classes[inx]), conf, nil
}

// TrainedExamples reports how many examples the classifier has seen.
func (b *Bayes) TrainedExamples() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.trained
}

// Save writes the classifier state (gob) so a restart keeps learned examples.
func (b *Bayes) Save(path string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return errors.Wrap(b.c.WriteToFile(path), "save model")
}

// Load replaces the classifier with a previously saved one.
func (b *Bayes) Load(path string) error {
	c, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return errors.Wrap(err, "load model")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.c = c
	b.classes = make(map[bayesian.Class]bool, len(c.Classes))
	for _, cl := range c.Classes {
		b.classes[cl] = true
	}
	// a persisted model was trained at least once
	b.trained = 1
	return nil
}

// tokens builds the document bag: merchant and description words, a
// sign-tagged amount bucket, and the payment channel.
func tokens(merchant, description, amountStr, channel string) []string {
	text := strings.ToLower(merchant + " " + description)
	doc := strings.Fields(text)
	if t := amountToken(amountStr); t != "" {
		doc = append(doc, t)
	}
	if channel = strings.ToLower(strings.TrimSpace(channel)); channel != "" {
		doc = append(doc, "ch:"+channel)
	}
	return doc
}

func amountToken(amountStr string) string {
	if amountStr == "" {
		return ""
	}
	a, err := decimal.NewFromString(amountStr)
	if err != nil {
		return ""
	}
	sign := "pos"
	if a.IsNegative() {
		sign = "neg"
	}
	abs := a.Abs()
	bucket := "huge"
	switch {
	case abs.LessThan(decimal.NewFromInt(10)):
		bucket = "micro"
	case abs.LessThan(decimal.NewFromInt(100)):
		bucket = "small"
	case abs.LessThan(decimal.NewFromInt(1000)):
		bucket = "medium"
	case abs.LessThan(decimal.NewFromInt(10000)):
		bucket = "large"
	}
	return "amt:" + sign + ":" + bucket
}
