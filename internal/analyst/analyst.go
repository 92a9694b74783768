package analyst

import (
	"context"
	"errors"

	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/trace"
	"sentiment-analyst/internal/types"
)

// ErrNoHeadlines reports that both news sources returned nothing; the run
// stops before classification and nothing is logged.
var ErrNoHeadlines = errors.New("no news found for this ticker")

// ErrClassificationFailed reports that headlines were retrieved but none could
// be classified, typically when the hosted model is down or still loading. The
// run stops before the history append so no fabricated verdict is persisted.
var ErrClassificationFailed = errors.New("failed to analyze news headlines")

// PriceSource returns the latest price snapshot, nil when unavailable.
type PriceSource interface {
	Snapshot(ctx context.Context, ticker string) *types.PriceSnapshot
}

// HeadlineSource retrieves headlines for a ticker.
type HeadlineSource interface {
	GetHeadlines(ctx context.Context, ticker string) []types.HeadlineRecord
}

// Analyzer classifies headlines and aggregates them into a result.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string, headlines []types.HeadlineRecord) types.AnalysisResult
}

// Recorder appends analysis results to the history log and exports it.
type Recorder interface {
	Record(result types.AnalysisResult) (types.HistoryEntry, error)
	Export() ([]byte, error)
}

// Analyst runs one ticker analysis end to end: price snapshot, headline
// retrieval, classification and aggregation, then the history append.
type Analyst struct {
	market  PriceSource
	news    HeadlineSource
	engine  Analyzer
	history Recorder
}

// New wires the pipeline together.
func New(m PriceSource, n HeadlineSource, e Analyzer, h Recorder) *Analyst {
	return &Analyst{market: m, news: n, engine: e, history: h}
}

// Report is everything the presentation layer renders for one run.
type Report struct {
	Ticker string               `json:"ticker"`
	Price  *types.PriceSnapshot `json:"price,omitempty"`
	Result types.AnalysisResult `json:"result"`
	Entry  types.HistoryEntry   `json:"entry"`
	Logged bool                 `json:"logged"`
}

// Run analyzes one ticker start to finish. Price unavailability and a failed
// history append degrade the report; total retrieval or classification
// failure aborts it.
func (a *Analyst) Run(ctx context.Context, ticker string) (*Report, error) {
	ctx, span := trace.StartSpan(ctx, "analyze-ticker")
	defer span.End()

	price := a.market.Snapshot(ctx, ticker)

	headlines := a.news.GetHeadlines(ctx, ticker)
	if len(headlines) == 0 {
		return nil, ErrNoHeadlines
	}

	result := a.engine.Analyze(ctx, ticker, headlines)
	if len(result.Classified) == 0 {
		return nil, ErrClassificationFailed
	}

	report := &Report{
		Ticker: ticker,
		Price:  price,
		Result: result,
	}

	entry, err := a.history.Record(result)
	if err != nil {
		logger.ErrorWithErr(ctx, "History append failed", err, "ticker", ticker)
	} else {
		report.Logged = true
	}
	report.Entry = entry

	return report, nil
}

// History exposes the underlying log for export.
func (a *Analyst) History() Recorder {
	return a.history
}
