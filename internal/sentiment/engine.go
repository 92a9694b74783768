package sentiment

import (
	"context"

	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/trace"
	"sentiment-analyst/internal/types"
)

// Verdict thresholds over the net sentiment score. Midpoint values are
// NEUTRAL; only strictly greater or lesser scores flip the verdict.
const (
	bullishThreshold = 0.2
	bearishThreshold = -0.2
)

// Engine classifies headlines one by one and aggregates them into a score and
// verdict.
type Engine struct {
	classifier Classifier
}

// NewEngine creates an aggregation engine around the injected classifier.
func NewEngine(classifier Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// Analyze classifies each headline in sequence and aggregates the results.
// A headline whose classification fails is dropped; the rest of the batch is
// unaffected. An empty classified set yields score 0 and a NEUTRAL verdict.
func (e *Engine) Analyze(ctx context.Context, ticker string, headlines []types.HeadlineRecord) types.AnalysisResult {
	ctx, span := trace.StartSpan(ctx, "analyze-sentiment")
	defer span.End()

	classified := make([]types.ClassifiedHeadline, 0, len(headlines))
	for _, h := range headlines {
		label, confidence, err := e.classifier.Classify(ctx, h.Title)
		if err != nil {
			logger.ErrorWithErr(ctx, "Headline classification failed, dropping", err, "title", h.Title)
			continue
		}
		classified = append(classified, types.ClassifiedHeadline{
			HeadlineRecord: h,
			Label:          label,
			Confidence:     confidence,
		})
	}

	score := Score(classified)
	verdict := VerdictFor(score)

	if len(classified) > 0 {
		logger.Verdict(ctx, ticker, string(verdict), score, len(classified))
	}

	return types.AnalysisResult{
		Ticker:     ticker,
		Score:      score,
		Verdict:    verdict,
		Classified: classified,
	}
}

// Score computes (positives - negatives) / total over the classified set,
// defined as 0 for an empty set.
func Score(classified []types.ClassifiedHeadline) float64 {
	if len(classified) == 0 {
		return 0
	}
	var pos, neg int
	for _, c := range classified {
		switch c.Label {
		case types.LabelPositive:
			pos++
		case types.LabelNegative:
			neg++
		}
	}
	return float64(pos-neg) / float64(len(classified))
}

// VerdictFor maps a score to the three-way verdict.
func VerdictFor(score float64) types.Verdict {
	switch {
	case score > bullishThreshold:
		return types.VerdictBullish
	case score < bearishThreshold:
		return types.VerdictBearish
	default:
		return types.VerdictNeutral
	}
}
