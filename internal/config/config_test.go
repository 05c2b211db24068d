package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Sources: SourcesConfig{
			Firecrawl: SourceConfig{Enabled: true, APIKey: "fc-key"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_FirecrawlDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.Firecrawl.Enabled = false

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when primary source is disabled")
	}
}

func TestValidate_FirecrawlMissingKey(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.Firecrawl.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing firecrawl api key")
	}
}

func TestValidate_SerperEnabledWithoutKey(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.Serper.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when serper is enabled without api key")
	}
}

func TestValidate_SerperDisabledWithoutKey(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.Serper.Enabled = false

	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled serper must not require a key: %v", err)
	}
}

func TestValidate_CacheEnabledWithoutAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when cache is enabled without addrs")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("read timeout: got %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("write timeout: got %d, want 60", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Search.MaxResults != 5 {
		t.Errorf("max results: got %d, want 5", cfg.Search.MaxResults)
	}
	if cfg.Search.SourceTimeoutSec != 30 {
		t.Errorf("source timeout: got %d, want 30", cfg.Search.SourceTimeoutSec)
	}
	if cfg.Search.RetryAttempts != 3 {
		t.Errorf("retry attempts: got %d, want 3", cfg.Search.RetryAttempts)
	}
	if cfg.Cache.TTLSec != 3600 {
		t.Errorf("cache ttl: got %d, want 3600", cfg.Cache.TTLSec)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Search: SearchConfig{MaxResults: 10, SourceTimeoutSec: 5, RetryAttempts: 1},
	}
	cfg.ApplyDefaults()

	if cfg.Search.MaxResults != 10 || cfg.Search.SourceTimeoutSec != 5 || cfg.Search.RetryAttempts != 1 {
		t.Errorf("explicit values overwritten: %+v", cfg.Search)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TS_TEST_KEY", "secret-value")

	data := expandEnvVars([]byte("api_key: ${TS_TEST_KEY}"))
	if string(data) != "api_key: secret-value" {
		t.Errorf("got %q", string(data))
	}
}

func TestExpandEnvVars_Default(t *testing.T) {
	data := expandEnvVars([]byte("base_url: ${TS_UNSET_VAR:-https://fallback.dev}"))
	if string(data) != "base_url: https://fallback.dev" {
		t.Errorf("got %q", string(data))
	}
}
