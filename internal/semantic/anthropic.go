package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"

	"github.com/anthurium-ai/txn-classify/internal/classify"
	"github.com/shopspring/decimal"
)

const (
	defaultModel   = "claude-sonnet-4-5-20250929"
	requestTimeout = 20 * time.Second
)

// Matcher asks an LLM to pick a category from the closed vocabulary. It
// implements the engine's SemanticMatcher; the engine treats a nil matcher
// as a permanent abstention.
type Matcher struct {
	client     anthropic.Client
	model      string
	categories string
}

// New builds a matcher. An empty apiKey returns nil so the caller can wire
// the result straight into the engine.
func New(apiKey, model string, categories []string) *Matcher {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}
	return &Matcher{
		client:     anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:      model,
		categories: strings.Join(categories, ", "),
	}
}

type reply struct {
	Category   string  `json:"category"`
	Similarity float64 `json:"similarity"`
}

// Match requests a JSON {category, similarity} verdict. Sloppy output is
// salvaged by extracting the last {...} block, the same way markdown-wrapped
// responses are handled.
func (m *Matcher) Match(ctx context.Context, merchant, description string, amount *decimal.Decimal, channel, accountType, accountSubtype string) (*classify.SemanticMatch, error) {
	cctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	amountStr := "unknown"
	if amount != nil {
		amountStr = amount.String()
	}
	prompt := fmt.Sprintf(`You are classifying one personal finance transaction.

Merchant: %s
Description: %s
Amount (negative means spend): %s
Payment channel: %s
Account: %s %s

Pick exactly one category from this list:
%s

Return JSON only:
{"category":"...","similarity":0.0-1.0}
`, strings.TrimSpace(merchant), strings.TrimSpace(description), amountStr,
		channel, accountType, accountSubtype, m.categories)

	message, err := m.client.Messages.New(cctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: 256,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "semantic request")
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	r, err := parseReply(text)
	if err != nil {
		return nil, err
	}
	if r.Category == "" {
		return nil, nil
	}
	if r.Similarity < 0 {
		r.Similarity = 0
	}
	if r.Similarity > 1 {
		r.Similarity = 1
	}
	return &classify.SemanticMatch{
		Category:   strings.ToLower(strings.TrimSpace(r.Category)),
		Similarity: r.Similarity,
		Method:     "llm " + m.model,
	}, nil
}

func parseReply(text string) (reply, error) {
	var r reply
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &r); err == nil {
		return r, nil
	}
	i := strings.LastIndex(text, "{")
	j := strings.LastIndex(text, "}")
	if i >= 0 && j > i {
		if err := json.Unmarshal([]byte(text[i:j+1]), &r); err == nil {
			return r, nil
		}
	}
	return r, errors.Errorf("response was not JSON: %s", strings.TrimSpace(text))
}
