package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8089" {
		t.Errorf("Expected Port to be 8089, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Hedge.Capital != 10000 {
		t.Errorf("Expected Hedge.Capital to be 10000, got %v", cfg.Hedge.Capital)
	}

	if cfg.Hedge.Asset1Vol != 70 || cfg.Hedge.Asset2Vol != 90 {
		t.Errorf("Expected vols 70/90, got %v/%v", cfg.Hedge.Asset1Vol, cfg.Hedge.Asset2Vol)
	}

	if cfg.Sample.Period != 30 {
		t.Errorf("Expected Sample.Period to be 30, got %d", cfg.Sample.Period)
	}

	if cfg.API.ReadTimeout != 15*time.Second {
		t.Errorf("Expected API.ReadTimeout to be 15s, got %v", cfg.API.ReadTimeout)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("HEDGE_CAPITAL", "25000")
	t.Setenv("HEDGE_LEVERAGE", "3")
	t.Setenv("HEDGE_USE_COMPUTED_BETA", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Hedge.Capital != 25000 {
		t.Errorf("Expected Hedge.Capital to be 25000, got %v", cfg.Hedge.Capital)
	}

	if cfg.Hedge.Leverage != 3 {
		t.Errorf("Expected Hedge.Leverage to be 3, got %v", cfg.Hedge.Leverage)
	}

	if cfg.Hedge.UseComputedBeta {
		t.Error("Expected Hedge.UseComputedBeta to be false")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "invalid")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateHedgeDefaults(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"HEDGE_CAPITAL", "-1"},
		{"HEDGE_LEVERAGE", "0"},
		{"HEDGE_ASSET1_VOL", "0"},
		{"HEDGE_VAR_CONFIDENCE", "1.5"},
		{"SAMPLE_PERIOD", "1"},
		{"API_RATE_LIMIT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected error when %s=%s, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "2h")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}

	t.Setenv("TEST_DURATION", "soon")
	if got := getEnvAsDuration("TEST_DURATION", "1h"); got != time.Hour {
		t.Errorf("Expected fallback 1h, got %v", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "100")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.99")

	if value := getEnvAsFloat("TEST_FLOAT", 0.5); value != 0.99 {
		t.Errorf("Expected value to be 0.99, got %v", value)
	}

	t.Setenv("TEST_FLOAT", "abc")
	if value := getEnvAsFloat("TEST_FLOAT", 0.5); value != 0.5 {
		t.Errorf("Expected fallback 0.5, got %v", value)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}
}
