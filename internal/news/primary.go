package news

import (
	"context"
	"fmt"
	"net/url"

	"sentiment-analyst/internal/api"
	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/types"
)

const primaryPublisherFallback = "Yahoo Finance"

// Source produces ordered headline records for a ticker.
type Source interface {
	Fetch(ctx context.Context, ticker string) ([]types.HeadlineRecord, error)
}

// PrimarySource queries the financial news feed keyed by ticker.
type PrimarySource struct {
	client   *api.Client
	feedURL  string
	maxItems int
}

// NewPrimarySource creates the primary feed adapter.
func NewPrimarySource(feedURL string, maxItems int) *PrimarySource {
	return &PrimarySource{
		client:   api.NewClient(api.WithLogging(logger.IsDebugEnabled())),
		feedURL:  feedURL,
		maxItems: maxItems,
	}
}

// feedResponse mirrors the nested item -> content -> {title, publisher,
// clickThroughUrl -> url} shape of the feed. Every level may be missing.
type feedResponse struct {
	News []feedItem `json:"news"`
}

type feedItem struct {
	Content *feedContent `json:"content"`
}

type feedContent struct {
	Title           string `json:"title"`
	Publisher       string `json:"publisher"`
	ClickThroughURL *struct {
		URL string `json:"url"`
	} `json:"clickThroughUrl"`
}

// Fetch returns headlines from the primary feed, most recent first.
// Failures degrade to an empty result with an error for the caller to log;
// they never abort the analysis run.
func (s *PrimarySource) Fetch(ctx context.Context, ticker string) ([]types.HeadlineRecord, error) {
	reqURL := fmt.Sprintf("%s?q=%s&newsCount=%d", s.feedURL, url.QueryEscape(ticker), s.maxItems)

	resp, err := s.client.GET(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("primary feed fetch: %w", err)
	}

	var fr feedResponse
	if err := resp.DecodeJSON(&fr); err != nil {
		return nil, fmt.Errorf("primary feed parse: %w", err)
	}

	headlines := make([]types.HeadlineRecord, 0, len(fr.News))
	for _, item := range fr.News {
		if rec, ok := headlineFromItem(item); ok {
			headlines = append(headlines, rec)
		}
		if len(headlines) >= s.maxItems {
			break
		}
	}

	logger.Info(ctx, "Primary feed fetched", "ticker", ticker, "headlines", len(headlines))
	return headlines, nil
}

// headlineFromItem navigates the nested feed item defensively. Items without
// a content block or title are skipped; a missing publisher gets the fixed
// fallback label and a missing click-through URL leaves the link empty.
func headlineFromItem(item feedItem) (types.HeadlineRecord, bool) {
	if item.Content == nil || item.Content.Title == "" {
		return types.HeadlineRecord{}, false
	}

	rec := types.HeadlineRecord{
		Title:     item.Content.Title,
		Publisher: item.Content.Publisher,
	}
	if rec.Publisher == "" {
		rec.Publisher = primaryPublisherFallback
	}
	if item.Content.ClickThroughURL != nil {
		rec.Link = item.Content.ClickThroughURL.URL
	}
	return rec, true
}
