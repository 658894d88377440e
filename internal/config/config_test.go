package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlagSet(t))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.ClientTimeout != "30s" {
		t.Errorf("Expected client_timeout 30s, got %q", cfg.ClientTimeout)
	}
	if cfg.RequestTimeout != "10s" {
		t.Errorf("Expected request_timeout 10s, got %q", cfg.RequestTimeout)
	}
	if len(cfg.Sources.Order) != 2 || cfg.Sources.Order[0] != "episodate" || cfg.Sources.Order[1] != "tvmaze" {
		t.Errorf("Expected default order [episodate tvmaze], got %v", cfg.Sources.Order)
	}
	if cfg.Sources.Episodate.SearchURL != DefaultEpisodateSearchURL {
		t.Errorf("Expected default episodate search URL, got %q", cfg.Sources.Episodate.SearchURL)
	}
	if cfg.Sources.Episodate.DetailURL != DefaultEpisodateDetailURL {
		t.Errorf("Expected default episodate detail URL, got %q", cfg.Sources.Episodate.DetailURL)
	}
	if cfg.Sources.TVMaze.SearchURL != DefaultTVMazeSearchURL {
		t.Errorf("Expected default tvmaze search URL, got %q", cfg.Sources.TVMaze.SearchURL)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("Expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.Metrics.Job != "tvshowinfo" {
		t.Errorf("Expected metrics job tvshowinfo, got %q", cfg.Metrics.Job)
	}
	if cfg.InsecureSkipVerify {
		t.Error("Expected TLS verification to be enabled by default")
	}
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(newFlagSet(t, "--show", "Lost S01E02", "-w", "http://a,http://b", "--log-level", "debug"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Show != "Lost S01E02" {
		t.Errorf("Expected show from flag, got %q", cfg.Show)
	}
	if cfg.Webhook != "http://a,http://b" {
		t.Errorf("Expected webhook from flag, got %q", cfg.Webhook)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoad_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
webhook: http://from-file
user_agent: test-agent
sources:
  order: [tvmaze]
  tvmaze:
    search_url: http://localhost/search
metrics:
  pushgateway_url: http://pushgateway:9091
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("APP_SHOW", "From Env")

	cfg, err := Load(newFlagSet(t, "--config", path))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Webhook != "http://from-file" {
		t.Errorf("Expected webhook from file, got %q", cfg.Webhook)
	}
	if cfg.Show != "From Env" {
		t.Errorf("Expected show from env, got %q", cfg.Show)
	}
	if cfg.UserAgent != "test-agent" || GetUserAgent() != "test-agent" {
		t.Errorf("Expected user agent from file, got %q", cfg.UserAgent)
	}
	if len(cfg.Sources.Order) != 1 || cfg.Sources.Order[0] != "tvmaze" {
		t.Errorf("Expected order [tvmaze], got %v", cfg.Sources.Order)
	}
	if cfg.Sources.TVMaze.SearchURL != "http://localhost/search" {
		t.Errorf("Expected tvmaze URL from file, got %q", cfg.Sources.TVMaze.SearchURL)
	}
	if cfg.Metrics.PushgatewayURL != "http://pushgateway:9091" {
		t.Errorf("Expected pushgateway URL from file, got %q", cfg.Metrics.PushgatewayURL)
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(newFlagSet(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	if err == nil {
		t.Fatal("Expected error for missing explicit config file, got nil")
	}
}

func TestLoad_InvalidLogLevelFallsBack(t *testing.T) {
	cfg, err := Load(newFlagSet(t, "--log-level", "verbose"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.LogLevel != "verbose" {
		t.Errorf("Expected raw log level to be kept, got %q", cfg.LogLevel)
	}
	if lvl := GetLogger().GetLevel().String(); lvl != "info" {
		t.Errorf("Expected logger level info, got %s", lvl)
	}
}
