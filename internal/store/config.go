package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataDir string `yaml:"data_dir"`
	Market  struct {
		ChartURL string `yaml:"chart_url"`
	} `yaml:"market"`
	News struct {
		PrimaryURL             string `yaml:"primary_url"`
		FallbackURL            string `yaml:"fallback_url"`
		MaxItems               int    `yaml:"max_items"`
		FallbackTimeoutSeconds int    `yaml:"fallback_timeout_seconds"`
	} `yaml:"news"`
	Translate struct {
		URL string `yaml:"url"`
	} `yaml:"translate"`
	Classifier struct {
		URL       string `yaml:"url"`
		Model     string `yaml:"model"`
		APIKeyEnv string `yaml:"api_key_env"`
	} `yaml:"classifier"`
}

// FallbackTimeout returns the fallback fetch timeout as a duration.
func (c *Config) FallbackTimeout() time.Duration {
	return time.Duration(c.News.FallbackTimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.News.MaxItems <= 0 {
		return fmt.Errorf("news.max_items must be positive, got %d", c.News.MaxItems)
	}
	if c.News.FallbackTimeoutSeconds <= 0 {
		return fmt.Errorf("news.fallback_timeout_seconds must be positive, got %d", c.News.FallbackTimeoutSeconds)
	}
	if c.Classifier.Model == "" {
		return fmt.Errorf("classifier.model cannot be empty")
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

// DefaultConfig returns a config with all defaults applied, for use when no
// config file is present.
func DefaultConfig() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8090"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Market.ChartURL == "" {
		c.Market.ChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	if c.News.PrimaryURL == "" {
		c.News.PrimaryURL = "https://query1.finance.yahoo.com/v1/finance/search"
	}
	if c.News.FallbackURL == "" {
		c.News.FallbackURL = "https://news.google.com/rss/search"
	}
	if c.News.MaxItems == 0 {
		c.News.MaxItems = 10
	}
	if c.News.FallbackTimeoutSeconds == 0 {
		c.News.FallbackTimeoutSeconds = 10
	}
	if c.Translate.URL == "" {
		c.Translate.URL = "https://translate.googleapis.com/translate_a/single"
	}
	if c.Classifier.URL == "" {
		c.Classifier.URL = "https://api-inference.huggingface.co/models"
	}
	if c.Classifier.Model == "" {
		c.Classifier.Model = "ProsusAI/finbert"
	}
	if c.Classifier.APIKeyEnv == "" {
		c.Classifier.APIKeyEnv = "HF_API_TOKEN"
	}
}
