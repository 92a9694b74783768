package types

// Label is a sentiment class assigned to a single headline.
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// Verdict is the aggregate market read derived from the net sentiment score.
type Verdict string

const (
	VerdictBullish Verdict = "BULLISH"
	VerdictBearish Verdict = "BEARISH"
	VerdictNeutral Verdict = "NEUTRAL"
)

// HeadlineRecord is one news headline as returned by retrieval.
// OriginalTitle is set only when the title was machine-translated.
type HeadlineRecord struct {
	Title         string `json:"title"`
	Publisher     string `json:"publisher"`
	Link          string `json:"link,omitempty"`
	OriginalTitle string `json:"original_title,omitempty"`
}

// ClassifiedHeadline is a headline plus its sentiment classification.
type ClassifiedHeadline struct {
	HeadlineRecord
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// PriceSnapshot summarizes the latest close against the prior session.
type PriceSnapshot struct {
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	Currency  string  `json:"currency"`
}

// AnalysisResult is the outcome of one ticker analysis run.
type AnalysisResult struct {
	Ticker     string               `json:"ticker"`
	Score      float64              `json:"score"`
	Verdict    Verdict              `json:"verdict"`
	Classified []ClassifiedHeadline `json:"classified"`
}

// Counts returns the per-label breakdown of the classified headlines.
func (r AnalysisResult) Counts() (pos, neg, neu int) {
	for _, c := range r.Classified {
		switch c.Label {
		case LabelPositive:
			pos++
		case LabelNegative:
			neg++
		default:
			neu++
		}
	}
	return
}

// HistoryEntry is the reduced form of an analysis persisted to the history log.
type HistoryEntry struct {
	Timestamp string  `json:"timestamp"`
	Ticker    string  `json:"ticker"`
	Score     float64 `json:"score"`
	Verdict   Verdict `json:"verdict"`
}
