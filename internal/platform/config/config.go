// Package config loads the reinsertion service's environment-driven
// configuration: NMT transport settings, the default soft-alignment
// threshold, and the ambient logging/health knobs every cmd/reinsert mode
// shares.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, populated once at startup by Load.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// NMTEndpoint is the base URL of the external NMT alignment service.
	// Left empty, cmd/reinsert builds no NMT client and /readyz skips the NMT
	// check — useful for running the core engine standalone against
	// precomputed alignments. nmt.NewHTTPClient itself does not check it.
	NMTEndpoint     string        `env:"NMT_ENDPOINT"`
	NMTTimeout      time.Duration `env:"NMT_TIMEOUT" envDefault:"10s"`
	NMTMaxRetries   uint64        `env:"NMT_MAX_RETRIES" envDefault:"3"`
	NMTRetryBase    time.Duration `env:"NMT_RETRY_BASE" envDefault:"200ms"`
	NMTRateLimitRPS float64       `env:"NMT_RATE_LIMIT_RPS" envDefault:"5"`

	// DefaultSoftThreshold is the probability mass a Soft alignment's
	// argmax column must clear to count as an aligned pair (spec.md §3).
	// It is loaded but read by no other package: align.NewSoft takes its
	// threshold as an argument, and the API handler parses only Hard
	// alignments.
	DefaultSoftThreshold float64 `env:"DEFAULT_SOFT_THRESHOLD" envDefault:"0.5"`

	// DefaultStrategy holds a strategy name ("neighbor" or "complete"). It is
	// loaded but read by no other package: a request that names no strategy
	// is run with Neighbor (reinsert.ParseStrategy), whatever this is set to.
	DefaultStrategy string `env:"DEFAULT_STRATEGY" envDefault:"neighbor"`

	HealthPort int `env:"HEALTH_PORT" envDefault:"8080"`
	APIPort    int `env:"API_PORT" envDefault:"8081"`

	// RequestIDNamespace seeds the UUIDs internal/nmt stamps on outbound
	// requests for log correlation; fixed per-process so a restart doesn't
	// reuse a namespace an in-flight request from the old process still owns.
	RequestIDNamespace uuid.UUID `env:"-"`
}

// Load reads .env (if present) then the process environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	cfg.RequestIDNamespace = uuid.New()

	return cfg, nil
}
