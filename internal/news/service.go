package news

import (
	"context"

	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/types"
)

// Service retrieves headlines for a ticker: the primary feed first, then the
// fallback search when the primary yields nothing usable.
type Service struct {
	primary  Source
	fallback Source
}

// NewService wires the two retrieval steps together.
func NewService(primary, fallback Source) *Service {
	return &Service{primary: primary, fallback: fallback}
}

// GetHeadlines returns whichever sequence was produced: the primary result if
// non-empty, else the fallback result, which may also be empty. Source errors
// degrade to an empty result for that step; they never abort retrieval.
func (s *Service) GetHeadlines(ctx context.Context, ticker string) []types.HeadlineRecord {
	headlines, err := s.primary.Fetch(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Primary feed failed", err, "ticker", ticker)
	}
	if len(headlines) > 0 {
		return headlines
	}

	logger.Info(ctx, "No headlines from primary feed, trying fallback search", "ticker", ticker)
	headlines, err = s.fallback.Fetch(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Fallback search failed", err, "ticker", ticker)
		return nil
	}
	return headlines
}
