package market

import (
	"context"
	"fmt"
	"net/url"

	"sentiment-analyst/internal/api"
	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/types"
)

// Provider fetches recent daily closes for a ticker and derives a price
// snapshot against the prior session.
type Provider struct {
	client   *api.Client
	chartURL string
}

// NewProvider creates a price snapshot provider against the given chart endpoint.
func NewProvider(chartURL string) *Provider {
	return &Provider{
		client:   api.NewClient(api.WithLogging(logger.IsDebugEnabled())),
		chartURL: chartURL,
	}
}

// Snapshot returns the latest close and its change versus the prior session.
// A nil snapshot means the price is unavailable (lookup failed or fewer than
// two trading sessions of history). One attempt, no retry.
func (p *Provider) Snapshot(ctx context.Context, ticker string) *types.PriceSnapshot {
	reqURL := fmt.Sprintf("%s/%s?range=5d&interval=1d", p.chartURL, url.PathEscape(ticker))

	resp, err := p.client.GET(ctx, reqURL)
	if err != nil {
		logger.Warn(ctx, "Price lookup failed", "ticker", ticker, "error", err)
		return nil
	}

	closes, currency, err := parseChart(resp.Body)
	if err != nil {
		logger.Warn(ctx, "Price chart unparseable", "ticker", ticker, "error", err)
		return nil
	}

	return snapshotFromCloses(closes, currency)
}

// chartResponse mirrors the subset of the chart payload we consume.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency string `json:"currency"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// parseChart extracts daily closes and the currency from a chart payload.
// Null closes (holidays, partial sessions) are dropped.
func parseChart(body []byte) ([]float64, string, error) {
	var cr chartResponse
	resp := api.Response{Body: body}
	if err := resp.DecodeJSON(&cr); err != nil {
		return nil, "", err
	}
	if len(cr.Chart.Result) == 0 {
		return nil, "", fmt.Errorf("chart payload has no result")
	}

	result := cr.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, "", fmt.Errorf("chart payload has no quote data")
	}

	closes := make([]float64, 0, len(result.Indicators.Quote[0].Close))
	for _, c := range result.Indicators.Quote[0].Close {
		if c != nil {
			closes = append(closes, *c)
		}
	}
	return closes, result.Meta.Currency, nil
}

// snapshotFromCloses computes the snapshot from ordered daily closes.
// Returns nil when fewer than two sessions are available.
func snapshotFromCloses(closes []float64, currency string) *types.PriceSnapshot {
	if len(closes) < 2 {
		return nil
	}

	curr := closes[len(closes)-1]
	prev := closes[len(closes)-2]
	if prev == 0 {
		return nil
	}

	change := curr - prev
	return &types.PriceSnapshot{
		Price:     curr,
		Change:    change,
		ChangePct: change / prev * 100,
		Currency:  currency,
	}
}
