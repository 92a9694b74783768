package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"sentiment-analyst/internal/api"
)

// Translator converts text to a target language. Implementations are
// best-effort: callers fall back to the original text on error.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Translation is best-effort and per-title, so it gets a short deadline.
const translateTimeout = 10 * time.Second

// GoogleTranslator calls the public translate endpoint (gtx client).
type GoogleTranslator struct {
	client  *api.Client
	baseURL string
}

// NewGoogleTranslator creates a translator against the given endpoint.
func NewGoogleTranslator(baseURL string) *GoogleTranslator {
	return &GoogleTranslator{
		client: api.NewClient(
			api.WithTimeout(translateTimeout),
			api.WithHeader("User-Agent", browserUserAgent),
		),
		baseURL: baseURL,
	}
}

// Translate translates text into targetLang, auto-detecting the source
// language. One attempt per call.
func (t *GoogleTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	reqURL := fmt.Sprintf("%s?client=gtx&sl=auto&tl=%s&dt=t&q=%s",
		t.baseURL, url.QueryEscape(targetLang), url.QueryEscape(text))

	resp, err := t.client.GET(ctx, reqURL)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}

	return parseTranslation(resp.Body)
}

// parseTranslation extracts the translated text from the gtx response, which
// is a nested array: [[["translated","original",...], ...], ...].
func parseTranslation(body []byte) (string, error) {
	var raw []any
	resp := api.Response{Body: body}
	if err := resp.DecodeJSON(&raw); err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	segments, ok := raw[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", fmt.Errorf("translation response had no text")
	}
	return translated, nil
}
