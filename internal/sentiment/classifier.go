package sentiment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sentiment-analyst/internal/api"
	"sentiment-analyst/internal/types"
)

// Classifier assigns a sentiment label and confidence to a piece of financial
// text. It is constructed once and injected wherever classification happens,
// so tests can substitute it.
type Classifier interface {
	Classify(ctx context.Context, text string) (types.Label, float64, error)
}

// Cold starts on the hosted model can take a while, so the client waits
// longer than the default.
const classifyTimeout = 45 * time.Second

// FinBERTClassifier calls a hosted financial-text classification model over
// the inference HTTP API, one call per headline.
type FinBERTClassifier struct {
	client *api.Client
	path   string
}

// NewFinBERTClassifier creates a classifier client for the given model.
// apiKey may be empty for anonymous access.
func NewFinBERTClassifier(baseURL, model, apiKey string) *FinBERTClassifier {
	opts := []api.ClientOption{
		api.WithBaseURL(baseURL),
		api.WithTimeout(classifyTimeout),
	}
	if apiKey != "" {
		opts = append(opts, api.WithHeader("Authorization", "Bearer "+apiKey))
	}
	return &FinBERTClassifier{
		client: api.NewClient(opts...),
		path:   "/" + model,
	}
}

// inference response: one candidate list per input, each candidate carrying a
// label and a score, best first.
type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify returns the model's top label for the text. Any transport, auth or
// model-loading failure is returned as an error; the caller drops that single
// headline and continues.
func (c *FinBERTClassifier) Classify(ctx context.Context, text string) (types.Label, float64, error) {
	resp, err := c.client.POST(ctx, c.path, map[string]any{"inputs": text})
	if err != nil {
		return "", 0, fmt.Errorf("classification request: %w", err)
	}

	var candidates [][]classification
	if err := resp.DecodeJSON(&candidates); err != nil {
		return "", 0, fmt.Errorf("classification response: %w", err)
	}
	if len(candidates) == 0 || len(candidates[0]) == 0 {
		return "", 0, fmt.Errorf("classification response was empty")
	}

	top := candidates[0][0]
	for _, cand := range candidates[0][1:] {
		if cand.Score > top.Score {
			top = cand
		}
	}

	label, err := parseLabel(top.Label)
	if err != nil {
		return "", 0, err
	}
	return label, top.Score, nil
}

// parseLabel maps the model's case-insensitive label to our enum.
func parseLabel(raw string) (types.Label, error) {
	switch strings.ToUpper(raw) {
	case "POSITIVE":
		return types.LabelPositive, nil
	case "NEGATIVE":
		return types.LabelNegative, nil
	case "NEUTRAL":
		return types.LabelNeutral, nil
	default:
		return "", fmt.Errorf("unknown sentiment label %q", raw)
	}
}
