package news

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeFeed records the query and profile it was called with.
type fakeFeed struct {
	entries []feedEntry
	err     error
	query   string
	profile localeProfile
}

func (f *fakeFeed) fetchEntries(_ context.Context, query string, profile localeProfile) ([]feedEntry, error) {
	f.query = query
	f.profile = profile
	return f.entries, f.err
}

// fakeTranslator prefixes translated text and can fail for specific inputs.
type fakeTranslator struct {
	failing map[string]bool
	calls   []string
}

func (f *fakeTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	f.calls = append(f.calls, text)
	if f.failing[text] {
		return "", errors.New("translation unavailable")
	}
	return "EN: " + text, nil
}

func TestProfileForLocalExchangeTicker(t *testing.T) {
	clean, profile := profileFor("BBCA.JK")
	if clean != "BBCA" {
		t.Errorf("expected suffix stripped, got %q", clean)
	}
	if profile != localeIndonesian {
		t.Errorf("expected Indonesian profile, got %+v", profile)
	}
	if !profile.needsTranslation() {
		t.Error("Indonesian profile must require translation")
	}
}

func TestProfileForInternationalTicker(t *testing.T) {
	clean, profile := profileFor("tsla")
	if clean != "TSLA" {
		t.Errorf("expected upper-cased ticker, got %q", clean)
	}
	if profile != localeEnglish {
		t.Errorf("expected English profile, got %+v", profile)
	}
	if profile.needsTranslation() {
		t.Error("English profile must not require translation")
	}
}

func TestFallbackLocalTickerTranslatesEveryTitle(t *testing.T) {
	feed := &fakeFeed{entries: []feedEntry{
		{Title: "Laba BBCA naik", Source: "Kontan"},
		{Title: "Saham bank menguat"},
	}}
	tr := &fakeTranslator{}
	src := &FallbackSource{feed: feed, translator: tr, maxItems: 10}

	got, err := src.Fetch(context.Background(), "BBCA.JK")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if feed.query != "BBCA saham" {
		t.Errorf("expected local-language query %q, got %q", "BBCA saham", feed.query)
	}
	if feed.profile != localeIndonesian {
		t.Errorf("expected Indonesian profile, got %+v", feed.profile)
	}
	if len(tr.calls) != 2 {
		t.Fatalf("expected every title routed through translation, got %d calls", len(tr.calls))
	}

	if got[0].Title != "EN: Laba BBCA naik" {
		t.Errorf("expected translated title, got %q", got[0].Title)
	}
	if got[0].OriginalTitle != "Laba BBCA naik" {
		t.Errorf("expected original title preserved, got %q", got[0].OriginalTitle)
	}
	if got[1].Publisher != fallbackSourceLabel {
		t.Errorf("expected default source label, got %q", got[1].Publisher)
	}
}

func TestFallbackInternationalTickerBypassesTranslation(t *testing.T) {
	feed := &fakeFeed{entries: []feedEntry{{Title: "TSLA rallies", Source: "Reuters"}}}
	tr := &fakeTranslator{}
	src := &FallbackSource{feed: feed, translator: tr, maxItems: 10}

	got, err := src.Fetch(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if feed.query != "TSLA stock" {
		t.Errorf("expected English query %q, got %q", "TSLA stock", feed.query)
	}
	if len(tr.calls) != 0 {
		t.Errorf("expected no translation calls, got %d", len(tr.calls))
	}
	if got[0].Title != "TSLA rallies" {
		t.Errorf("expected verbatim title, got %q", got[0].Title)
	}
	if got[0].OriginalTitle != "" {
		t.Errorf("expected no original title, got %q", got[0].OriginalTitle)
	}
}

func TestFallbackTranslationFailureKeepsOriginal(t *testing.T) {
	feed := &fakeFeed{entries: []feedEntry{
		{Title: "judul satu"},
		{Title: "judul dua"},
	}}
	tr := &fakeTranslator{failing: map[string]bool{"judul satu": true}}
	src := &FallbackSource{feed: feed, translator: tr, maxItems: 10}

	got, err := src.Fetch(context.Background(), "BBCA.JK")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if got[0].Title != "judul satu" || got[0].OriginalTitle != "" {
		t.Errorf("failed translation must keep the untranslated title, got %+v", got[0])
	}
	if got[1].Title != "EN: judul dua" {
		t.Errorf("rest of the batch must still be translated, got %q", got[1].Title)
	}
}

func TestFallbackCapsRawFeedWindowBeforeSkippingUntitled(t *testing.T) {
	entries := []feedEntry{{Title: ""}}
	for i := 0; i < 15; i++ {
		entries = append(entries, feedEntry{Title: fmt.Sprintf("headline %d", i+1)})
	}
	src := &FallbackSource{feed: &fakeFeed{entries: entries}, translator: &fakeTranslator{}, maxItems: 10}

	got, err := src.Fetch(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 9 {
		t.Fatalf("an untitled entry inside the first 10 must shrink the result to 9, got %d", len(got))
	}
	if got[len(got)-1].Title != "headline 9" {
		t.Errorf("no entry beyond the 10th may be pulled in, last was %q", got[len(got)-1].Title)
	}
}

func TestCleanTitle(t *testing.T) {
	cases := map[string]string{
		"plain title":             "plain title",
		"<b>bold</b> move":        "bold move",
		"spaced    out\ttitle":    "spaced out title",
		"A&amp;B merger approved": "A&B merger approved",
	}
	for in, want := range cases {
		if got := cleanTitle(in); got != want {
			t.Errorf("cleanTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
