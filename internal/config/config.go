package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/stlquote/pkg/quote"
	"github.com/philipparndt/stlquote/pkg/stl"
)

type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Lang      string `yaml:"lang"`

	// FillFactor is the share of the bounding box assumed to be solid
	FillFactor float64 `yaml:"fill_factor"`

	Pricing quote.PriceList `yaml:"pricing"`
	Server  ServerConfig    `yaml:"server"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "text",
		Lang:       "it",
		FillFactor: stl.DefaultFillFactor,
		Pricing:    quote.DefaultPriceList(),
		Server: ServerConfig{
			Addr:            ":8080",
			MaxUploadBytes:  64 << 20,
			RateLimitRPS:    5,
			RateLimitBurst:  10,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load returns the defaults, overlaid with the YAML file at path (if any)
// and then with STLQUOTE_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// A material table in the file replaces the defaults instead of merging
	defaults := c.Pricing.Materials
	c.Pricing.Materials = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if c.Pricing.Materials == nil {
		c.Pricing.Materials = defaults
	}
	return nil
}

func (c *Config) applyEnv() {
	c.LogLevel = mustEnv("STLQUOTE_LOG_LEVEL", c.LogLevel)
	c.LogFormat = mustEnv("STLQUOTE_LOG_FORMAT", c.LogFormat)
	c.Lang = mustEnv("STLQUOTE_LANG", c.Lang)
	c.FillFactor = mustEnvFloat("STLQUOTE_FILL_FACTOR", c.FillFactor)

	c.Server.Addr = mustEnv("STLQUOTE_ADDR", c.Server.Addr)
	c.Server.MaxUploadBytes = int64(mustEnvInt("STLQUOTE_MAX_UPLOAD_BYTES", int(c.Server.MaxUploadBytes)))
	c.Server.RateLimitRPS = mustEnvFloat("STLQUOTE_RATE_LIMIT_RPS", c.Server.RateLimitRPS)
	c.Server.RateLimitBurst = mustEnvInt("STLQUOTE_RATE_LIMIT_BURST", c.Server.RateLimitBurst)
}

func (c Config) Validate() error {
	if !(c.FillFactor > 0 && c.FillFactor <= 1) {
		return fmt.Errorf("fill_factor must be in (0, 1], got %v", c.FillFactor)
	}
	if err := c.Pricing.Validate(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if c.Server.RateLimitRPS < 0 || math.IsNaN(c.Server.RateLimitRPS) {
		return fmt.Errorf("server.rate_limit_rps must not be negative, got %v", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("server.rate_limit_burst must be at least 1, got %d", c.Server.RateLimitBurst)
	}
	return nil
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
