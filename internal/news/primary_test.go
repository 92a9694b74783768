package news

import (
	"encoding/json"
	"testing"
)

func decodeFeed(t *testing.T, payload string) feedResponse {
	t.Helper()
	var fr feedResponse
	if err := json.Unmarshal([]byte(payload), &fr); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return fr
}

func TestHeadlineFromItemComplete(t *testing.T) {
	fr := decodeFeed(t, `{"news":[{"content":{"title":"TSLA beats estimates","publisher":"Reuters","clickThroughUrl":{"url":"https://example.com/a"}}}]}`)

	rec, ok := headlineFromItem(fr.News[0])
	if !ok {
		t.Fatal("expected item to parse")
	}
	if rec.Title != "TSLA beats estimates" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Publisher != "Reuters" {
		t.Errorf("publisher = %q", rec.Publisher)
	}
	if rec.Link != "https://example.com/a" {
		t.Errorf("link = %q", rec.Link)
	}
}

func TestHeadlineFromItemMissingContent(t *testing.T) {
	fr := decodeFeed(t, `{"news":[{}]}`)

	if _, ok := headlineFromItem(fr.News[0]); ok {
		t.Error("item without a content block must be skipped")
	}
}

func TestHeadlineFromItemMissingTitle(t *testing.T) {
	fr := decodeFeed(t, `{"news":[{"content":{"publisher":"Reuters"}}]}`)

	if _, ok := headlineFromItem(fr.News[0]); ok {
		t.Error("item without a title must be skipped")
	}
}

func TestHeadlineFromItemPublisherDefault(t *testing.T) {
	fr := decodeFeed(t, `{"news":[{"content":{"title":"untitled publisher"}}]}`)

	rec, ok := headlineFromItem(fr.News[0])
	if !ok {
		t.Fatal("expected item to parse")
	}
	if rec.Publisher != primaryPublisherFallback {
		t.Errorf("expected fallback publisher label, got %q", rec.Publisher)
	}
}

func TestHeadlineFromItemMissingLink(t *testing.T) {
	fr := decodeFeed(t, `{"news":[{"content":{"title":"no link","publisher":"Reuters"}}]}`)

	rec, ok := headlineFromItem(fr.News[0])
	if !ok {
		t.Fatal("expected item to parse")
	}
	if rec.Link != "" {
		t.Errorf("expected empty link, got %q", rec.Link)
	}
}
