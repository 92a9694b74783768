package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  addr: \":9000\"\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.News.MaxItems != 10 {
		t.Errorf("expected default max_items 10, got %d", cfg.News.MaxItems)
	}
	if cfg.FallbackTimeout() != 10*time.Second {
		t.Errorf("expected default fallback timeout 10s, got %v", cfg.FallbackTimeout())
	}
	if cfg.Classifier.Model != "ProsusAI/finbert" {
		t.Errorf("expected default classifier model, got %q", cfg.Classifier.Model)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "news:\n  max_items: -1\n"))
	if err == nil {
		t.Fatal("expected validation error for negative max_items")
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}
