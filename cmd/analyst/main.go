package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"sentiment-analyst/internal/analyst"
	"sentiment-analyst/internal/history"
	"sentiment-analyst/internal/logger"
	"sentiment-analyst/internal/market"
	"sentiment-analyst/internal/news"
	"sentiment-analyst/internal/sentiment"
	"sentiment-analyst/internal/server"
	"sentiment-analyst/internal/store"
	"sentiment-analyst/internal/trace"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	if err := trace.Init(); err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer trace.Shutdown(context.Background())

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	a := buildAnalyst(cfg)
	_, r := server.New(a)

	log.Printf("Sentiment analyst listening on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
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
