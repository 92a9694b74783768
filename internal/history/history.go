package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"sentiment-analyst/internal/types"
)

const fileName = "sentiment_history.csv"

var header = []string{"timestamp", "ticker", "score", "verdict"}

// ErrNoHistory is returned by Export when no entry has ever been appended.
var ErrNoHistory = errors.New("no history recorded yet")

// Log is the append-only analysis history backed by a CSV file. Rows are
// never rewritten or deleted.
type Log struct {
	mu  sync.Mutex
	dir string
}

// NewLog creates a history log rooted at dir.
func NewLog(dir string) *Log {
	return &Log{dir: dir}
}

// Path returns the location of the backing file.
func (l *Log) Path() string {
	return filepath.Join(l.dir, fileName)
}

// Record reduces an analysis result to a history entry and appends it.
func (l *Log) Record(result types.AnalysisResult) (types.HistoryEntry, error) {
	entry := types.HistoryEntry{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Ticker:    result.Ticker,
		Score:     roundScore(result.Score),
		Verdict:   result.Verdict,
	}
	return entry, l.Append(entry)
}

// Append writes one entry. The backing file is created with a header row on
// first use; later appends add a single data row without touching the header.
func (l *Log) Append(entry types.HistoryEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return err
	}

	p := l.Path()
	_, statErr := os.Stat(p)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return err
		}
	}

	row := []string{
		entry.Timestamp,
		entry.Ticker,
		decimal.NewFromFloat(entry.Score).StringFixed(2),
		string(entry.Verdict),
	}
	if err := w.Write(row); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

// Export returns the raw current file contents for download or display.
func (l *Log) Export() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, err := os.ReadFile(l.Path())
	if os.IsNotExist(err) {
		return nil, ErrNoHistory
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return b, nil
}

// roundScore keeps the persisted score at two decimal places.
func roundScore(score float64) float64 {
	rounded, _ := decimal.NewFromFloat(score).Round(2).Float64()
	return rounded
}
