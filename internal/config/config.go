package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ShippingRates holds the flat per-method shipping amounts. Standard
// must stay strictly below Express.
type ShippingRates struct {
	StandardCents int64 `mapstructure:"standard_cents"`
	ExpressCents  int64 `mapstructure:"express_cents"`
}

// Config holds runtime configuration. Defaults come from the
// environment; an optional config file loaded via Loader overrides
// them.
type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	BackendURL      string        `mapstructure:"backend_url"`
	StateDir        string        `mapstructure:"state_dir"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	Shipping        ShippingRates `mapstructure:"shipping"`
	ShutdownTimeout time.Duration `mapstructure:"-"`
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		BackendURL:      envOrDefault("BACKEND_URL", "http://localhost:4000"),
		StateDir:        envOrDefault("STATE_DIR", defaultStateDir()),
		AllowedOrigins:  envList("ALLOWED_ORIGINS", []string{"*"}),
		Shipping:        ShippingRates{StandardCents: 500, ExpressCents: 1500},
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BackendURL) == "" {
		return fmt.Errorf("backend_url required")
	}
	if strings.TrimSpace(c.StateDir) == "" {
		return fmt.Errorf("state_dir required")
	}
	return c.Shipping.Validate()
}

// Validate enforces the rate table invariant: non-negative amounts,
// Standard strictly below Express.
func (r ShippingRates) Validate() error {
	if r.StandardCents < 0 || r.ExpressCents < 0 {
		return fmt.Errorf("shipping rates must be non-negative")
	}
	if r.StandardCents >= r.ExpressCents {
		return fmt.Errorf("standard rate %d must be below express rate %d", r.StandardCents, r.ExpressCents)
	}
	return nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".handestiy"
	}
	return home + string(os.PathSeparator) + ".handestiy"
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
