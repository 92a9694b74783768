package market

import (
	"math"
	"testing"
)

const chartFixture = `{
  "chart": {
    "result": [{
      "meta": {"currency": "USD"},
      "indicators": {"quote": [{"close": [248.5, null, 250.0, 245.0]}]}
    }],
    "error": null
  }
}`

func TestParseChart(t *testing.T) {
	closes, currency, err := parseChart([]byte(chartFixture))
	if err != nil {
		t.Fatalf("parseChart: %v", err)
	}
	if currency != "USD" {
		t.Errorf("currency = %q", currency)
	}
	if len(closes) != 3 {
		t.Fatalf("expected 3 non-null closes, got %d", len(closes))
	}
	if closes[2] != 245.0 {
		t.Errorf("last close = %f", closes[2])
	}
}

func TestParseChartMalformed(t *testing.T) {
	for _, body := range []string{`{}`, `{"chart":{"result":[]}}`, `{"chart":{"result":[{"indicators":{"quote":[]}}]}}`, `not json`} {
		if _, _, err := parseChart([]byte(body)); err == nil {
			t.Errorf("expected error for %q", body)
		}
	}
}

func TestSnapshotFromCloses(t *testing.T) {
	snap := snapshotFromCloses([]float64{250.0, 245.0}, "USD")
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Price != 245.0 {
		t.Errorf("price = %f", snap.Price)
	}
	if snap.Change != -5.0 {
		t.Errorf("change = %f", snap.Change)
	}
	if math.Abs(snap.ChangePct-(-2.0)) > 1e-9 {
		t.Errorf("change_pct = %f", snap.ChangePct)
	}
	if snap.Currency != "USD" {
		t.Errorf("currency = %q", snap.Currency)
	}
}

func TestSnapshotNeedsTwoSessions(t *testing.T) {
	if snap := snapshotFromCloses([]float64{245.0}, "USD"); snap != nil {
		t.Errorf("expected nil snapshot for a single session, got %+v", snap)
	}
	if snap := snapshotFromCloses(nil, "USD"); snap != nil {
		t.Errorf("expected nil snapshot for no sessions, got %+v", snap)
	}
}
