package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/types"
)

const (
	fallbackSourceLabel = "Google News"
	browserUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// feedEntry is one raw item extracted from the search feed.
type feedEntry struct {
	Title  string
	Link   string
	Source string
}

// feedFetcher retrieves raw entries from the fallback search feed.
type feedFetcher interface {
	fetchEntries(ctx context.Context, query string, profile localeProfile) ([]feedEntry, error)
}

// FallbackSource searches a general-purpose news feed when the primary feed
// yields nothing, translating non-English titles for the classifier.
type FallbackSource struct {
	feed       feedFetcher
	translator Translator
	maxItems   int
}

// NewFallbackSource creates the fallback search source.
func NewFallbackSource(searchURL string, timeout time.Duration, maxItems int, translator Translator) *FallbackSource {
	return &FallbackSource{
		feed:       &rssFeed{searchURL: searchURL, timeout: timeout},
		translator: translator,
		maxItems:   maxItems,
	}
}

// Fetch searches the fallback feed with a locale-appropriate query. Titles
// fetched under a non-English locale are translated to English one by one; a
// failed translation keeps that item's original title and never affects the
// rest of the batch.
func (s *FallbackSource) Fetch(ctx context.Context, ticker string) ([]types.HeadlineRecord, error) {
	clean, profile := profileFor(ticker)
	query := clean + " " + profile.Keyword

	entries, err := s.feed.fetchEntries(ctx, query, profile)
	if err != nil {
		return nil, fmt.Errorf("fallback feed fetch: %w", err)
	}

	// The cap applies to the raw feed window, not to usable titles: an
	// untitled entry inside the window shrinks the result rather than pulling
	// in a later entry.
	if len(entries) > s.maxItems {
		entries = entries[:s.maxItems]
	}

	headlines := make([]types.HeadlineRecord, 0, len(entries))
	for _, entry := range entries {
		title := cleanTitle(entry.Title)
		if title == "" {
			continue
		}

		rec := types.HeadlineRecord{
			Title:     title,
			Publisher: entry.Source,
			Link:      entry.Link,
		}
		if rec.Publisher == "" {
			rec.Publisher = fallbackSourceLabel
		}

		if profile.needsTranslation() {
			translated, err := s.translator.Translate(ctx, title, "en")
			if err != nil {
				logger.Warn(ctx, "Title translation failed, keeping original", "title", title, "error", err)
			} else if translated != "" {
				rec.OriginalTitle = title
				rec.Title = translated
			}
		}

		headlines = append(headlines, rec)
	}

	logger.Info(ctx, "Fallback feed fetched", "ticker", ticker, "locale", profile.Lang, "headlines", len(headlines))
	return headlines, nil
}

// rssFeed fetches the item-per-entry search feed over HTTP.
type rssFeed struct {
	searchURL string
	timeout   time.Duration
}

func (f *rssFeed) fetchEntries(ctx context.Context, query string, profile localeProfile) ([]feedEntry, error) {
	entries := []feedEntry{}

	c := colly.NewCollector()
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", browserUserAgent)
	})

	c.OnXML("//rss/channel/item", func(e *colly.XMLElement) {
		entries = append(entries, feedEntry{
			Title:  strings.TrimSpace(e.ChildText("title")),
			Link:   strings.TrimSpace(e.ChildText("link")),
			Source: strings.TrimSpace(e.ChildText("source")),
		})
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
	})

	searchURL := fmt.Sprintf("%s?q=%s&hl=%s&gl=%s&ceid=%s",
		f.searchURL, url.QueryEscape(query), profile.Lang, profile.Region, url.QueryEscape(profile.Edition))

	if err := c.Visit(searchURL); err != nil {
		return nil, err
	}
	c.Wait()

	if visitErr != nil {
		return nil, visitErr
	}
	return entries, nil
}

// cleanTitle strips residual markup and collapses whitespace in a feed title.
func cleanTitle(title string) string {
	if strings.ContainsAny(title, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(title)); err == nil {
			title = doc.Text()
		}
	}
	return strings.Join(strings.Fields(title), " ")
}
