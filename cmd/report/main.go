package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"sentiment-analyst/internal/analyst"
	"sentiment-analyst/internal/history"
	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/market"
	"sentiment-analyst/internal/news"
	"sentiment-analyst/internal/sentiment"
	"sentiment-analyst/internal/store"
	"sentiment-analyst/internal/trace"
	"sentiment-analyst/internal/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#374151")).Padding(0, 1)
	upStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	downStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func main() {
	_ = godotenv.Load()
	logger.InitWithConfig(logger.LogConfig{Level: "WARN", Format: "text"})
	if err := trace.Init(); err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer trace.Shutdown(context.Background())

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ticker := readTicker()
	fmt.Println(titleStyle.Render("Sentiment analysis for " + ticker))

	report, err := buildAnalyst(cfg).Run(context.Background(), ticker)
	if err != nil {
		if errors.Is(err, analyst.ErrNoHeadlines) {
			fmt.Println(neutralStyle.Render("No news found for " + ticker + ", nothing to analyze."))
			return
		}
		if errors.Is(err, analyst.ErrClassificationFailed) {
			fmt.Println(downStyle.Render("Failed to analyze news headlines. The model may still be loading, try again shortly."))
			return
		}
		fmt.Println(downStyle.Render("Analysis failed: " + err.Error()))
		return
	}

	printReport(report)
}

// readTicker takes the ticker from argv or prompts for one, defaulting to
// TSLA on empty input.
func readTicker() string {
	if len(os.Args) > 1 {
		return strings.ToUpper(strings.TrimSpace(os.Args[1]))
	}

	fmt.Print("Enter ticker symbol (e.g. TSLA or BBCA.JK): ")
	sc := bufio.NewScanner(os.Stdin)
	sc.Scan()
	ticker := strings.ToUpper(strings.TrimSpace(sc.Text()))
	if ticker == "" {
		ticker = "TSLA"
		fmt.Println(neutralStyle.Render("Empty input, using default: " + ticker))
	}
	return ticker
}

func printReport(report *analyst.Report) {
	if p := report.Price; p != nil {
		changeStyle := upStyle
		if p.Change < 0 {
			changeStyle = downStyle
		}
		panel := fmt.Sprintf("Price: %.2f %s   Change: %s   (%s)",
			p.Price, p.Currency,
			changeStyle.Render(fmt.Sprintf("%+.2f", p.Change)),
			changeStyle.Render(fmt.Sprintf("%+.2f%%", p.ChangePct)))
		fmt.Println(panelStyle.Render(panel))
	} else {
		fmt.Println(neutralStyle.Render("Price data unavailable."))
	}

	fmt.Println()
	for _, c := range report.Result.Classified {
		fmt.Printf("%s %s %s\n",
			labelStyle(c.Label).Render(fmt.Sprintf("[%s %.2f]", c.Label, c.Confidence)),
			c.Title,
			sourceStyle.Render("("+c.Publisher+")"))
	}

	pos, neg, neu := report.Result.Counts()
	fmt.Println()
	fmt.Printf("Positive: %d | Negative: %d | Neutral: %d\n", pos, neg, neu)
	fmt.Printf("Overall score: %.2f (-1 very bearish, +1 very bullish)\n", report.Result.Score)
	fmt.Println(labelVerdict(report.Result.Verdict).Render("Verdict: " + string(report.Result.Verdict)))

	if report.Logged {
		fmt.Println(sourceStyle.Render("Saved to history at " + report.Entry.Timestamp))
	}
}

func labelStyle(label types.Label) lipgloss.Style {
	switch label {
	case types.LabelPositive:
		return upStyle
	case types.LabelNegative:
		return downStyle
	default:
		return neutralStyle
	}
}

func labelVerdict(v types.Verdict) lipgloss.Style {
	switch v {
	case types.VerdictBullish:
		return upStyle.Bold(true)
	case types.VerdictBearish:
		return downStyle.Bold(true)
	default:
		return neutralStyle.Bold(true)
	}
}

func loadConfig() (*store.Config, error) {
	if _, err := os.Stat("config.yaml"); err == nil {
		return store.LoadConfig("config.yaml")
	}
	return store.DefaultConfig(), nil
}

func buildAnalyst(cfg *store.Config) *analyst.Analyst {
	translator := news.NewGoogleTranslator(cfg.Translate.URL)
	newsSvc := news.NewService(
		news.NewPrimarySource(cfg.News.PrimaryURL, cfg.News.MaxItems),
		news.NewFallbackSource(cfg.News.FallbackURL, cfg.FallbackTimeout(), cfg.News.MaxItems, translator),
	)
	classifier := sentiment.NewFinBERTClassifier(cfg.Classifier.URL, cfg.Classifier.Model, os.Getenv(cfg.Classifier.APIKeyEnv))

	return analyst.New(
		market.NewProvider(cfg.Market.ChartURL),
		newsSvc,
		sentiment.NewEngine(classifier),
		history.NewLog(cfg.DataDir),
	)
}
