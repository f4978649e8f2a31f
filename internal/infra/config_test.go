package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("KIE_API_KEY", "test-key")
	t.Setenv("KIE_BASE_URL", "")
	t.Setenv("KIE_TIMEOUT_SECONDS", "")
	t.Setenv("KIE_CALLBACK_URL_FALLBACK", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.KieBaseURL != "https://api.kie.ai/api/v1" {
		t.Fatalf("KieBaseURL mismatch: got %q", cfg.KieBaseURL)
	}
	if cfg.KieTimeout != 60*time.Second {
		t.Fatalf("KieTimeout mismatch: got %v", cfg.KieTimeout)
	}
	if cfg.CallbackURLFallback != "https://proxy.kie.ai/mcp-callback" {
		t.Fatalf("CallbackURLFallback mismatch: got %q", cfg.CallbackURLFallback)
	}
	if cfg.WorkerPollInterval != 15*time.Second {
		t.Fatalf("WorkerPollInterval mismatch: got %v", cfg.WorkerPollInterval)
	}
	if cfg.DBMaxConns != 10 || cfg.DBMinConns != 1 {
		t.Fatalf("pool size defaults mismatch: max=%d min=%d", cfg.DBMaxConns, cfg.DBMinConns)
	}
}

func TestLoadConfigPoolSizing(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("KIE_API_KEY", "test-key")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MIN_CONNS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DBMaxConns != 25 || cfg.DBMinConns != 5 {
		t.Fatalf("pool sizing mismatch: max=%d min=%d", cfg.DBMaxConns, cfg.DBMinConns)
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("KIE_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig should fail without KIE_API_KEY")
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("KIE_API_KEY", "test-key")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig should fail without DATABASE_URL")
	}
}

func TestLoadConfigHonorsExplicitValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("KIE_API_KEY", "test-key")
	t.Setenv("KIE_BASE_URL", "https://staging.kie.example/api/v1")
	t.Setenv("KIE_TIMEOUT_SECONDS", "5")
	t.Setenv("KIE_CALLBACK_URL", "https://hooks.example.com/kie")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.KieBaseURL != "https://staging.kie.example/api/v1" {
		t.Fatalf("KieBaseURL mismatch: got %q", cfg.KieBaseURL)
	}
	if cfg.KieTimeout != 5*time.Second {
		t.Fatalf("KieTimeout mismatch: got %v", cfg.KieTimeout)
	}
	if cfg.CallbackURL != "https://hooks.example.com/kie" {
		t.Fatalf("CallbackURL mismatch: got %q", cfg.CallbackURL)
	}
}
