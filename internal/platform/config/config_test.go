package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != "local" {
		t.Errorf("AppEnv default = %q, want %q", cfg.AppEnv, "local")
	}

	if cfg.NMTEndpoint != "" {
		t.Errorf("NMTEndpoint default = %q, want empty", cfg.NMTEndpoint)
	}

	if cfg.NMTTimeout.String() != "10s" {
		t.Errorf("NMTTimeout default = %v, want 10s", cfg.NMTTimeout)
	}

	if cfg.NMTMaxRetries != 3 {
		t.Errorf("NMTMaxRetries default = %d, want 3", cfg.NMTMaxRetries)
	}

	if cfg.DefaultSoftThreshold != 0.5 {
		t.Errorf("DefaultSoftThreshold default = %v, want 0.5", cfg.DefaultSoftThreshold)
	}

	if cfg.DefaultStrategy != "neighbor" {
		t.Errorf("DefaultStrategy default = %q, want %q", cfg.DefaultStrategy, "neighbor")
	}

	if cfg.HealthPort != 8080 {
		t.Errorf("HealthPort default = %d, want %d", cfg.HealthPort, 8080)
	}

	if cfg.APIPort != 8081 {
		t.Errorf("APIPort default = %d, want %d", cfg.APIPort, 8081)
	}

	if cfg.RequestIDNamespace.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("RequestIDNamespace should be a freshly generated uuid, not the zero value")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("NMT_ENDPOINT", "http://nmt.internal:9000")
	t.Setenv("NMT_MAX_RETRIES", "7")
	t.Setenv("DEFAULT_STRATEGY", "complete")
	t.Setenv("HEALTH_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NMTEndpoint != "http://nmt.internal:9000" {
		t.Errorf("NMTEndpoint = %q, want override", cfg.NMTEndpoint)
	}

	if cfg.NMTMaxRetries != 7 {
		t.Errorf("NMTMaxRetries = %d, want 7", cfg.NMTMaxRetries)
	}

	if cfg.DefaultStrategy != "complete" {
		t.Errorf("DefaultStrategy = %q, want complete", cfg.DefaultStrategy)
	}

	if cfg.HealthPort != 9090 {
		t.Errorf("HealthPort = %d, want 9090", cfg.HealthPort)
	}
}

func TestLoad_InvalidNumeric(t *testing.T) {
	t.Setenv("NMT_MAX_RETRIES", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Error("expected error for invalid NMT_MAX_RETRIES")
	}
}

func TestLoad_TwoCallsGetDistinctNamespaces(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	b, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if a.RequestIDNamespace == b.RequestIDNamespace {
		t.Error("two Load() calls produced the same RequestIDNamespace")
	}
}
