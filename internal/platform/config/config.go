// Package config loads and validates service configuration using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP listen port.
	DefaultServerPort = 3001

	// DefaultMaxRequestSize is the default maximum request body size (64KB).
	DefaultMaxRequestSize = 64 << 10

	// DefaultCodespaceName is the hostname hint used when none is configured.
	DefaultCodespaceName = "cautious-bassoon-7v9p6jppj57w26pq"

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// envPrefix prefixes every service environment variable.
	envPrefix = "APP_"

	// codespaceEnvVar is set by GitHub Codespaces.
	codespaceEnvVar = "CODESPACE_NAME"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Site      SiteConfig      `koanf:"site"`
	Quotes    QuotesConfig    `koanf:"quotes"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms,ltfield=WriteTimeout"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// SiteConfig controls how the home page builds links back to the API.
type SiteConfig struct {
	// CodespaceName is the hostname hint used to derive the public URL.
	CodespaceName string `koanf:"codespace_name" validate:"required_without=PublicBaseURL"`

	// PublicBaseURL overrides the derived URL when set.
	PublicBaseURL string `koanf:"public_base_url" validate:"omitempty,http_url"`
}

// QuotesConfig contains quote collection settings.
type QuotesConfig struct {
	// SeedFile is an optional YAML seed document. Empty means built-in seed.
	SeedFile string `koanf:"seed_file" validate:"omitempty,file"`
}

// BaseURL returns the absolute URL shown on the home page.
func (s SiteConfig) BaseURL(port int) string {
	if s.PublicBaseURL != "" {
		return strings.TrimRight(s.PublicBaseURL, "/")
	}

	return fmt.Sprintf("https://%s-%d.app.github.dev", s.CodespaceName, port)
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quote-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "15s",
		"server.write_timeout":    "15s",
		"server.idle_timeout":     "60s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "5s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quote-service.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quote-service",
		"telemetry.sampling_rate": 1.0,

		"site.codespace_name":  DefaultCodespaceName,
		"site.public_base_url": "",

		"quotes.seed_file": "",
	}
}

// Load loads configuration with the following precedence (highest last):
//  1. Default values
//  2. Base config file (configs/base.yaml)
//  3. Profile config file (configs/{profile}.yaml)
//  4. Environment variables (APP_ prefix)
//  5. CODESPACE_NAME, mapped to site.codespace_name
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, dir+"/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		err = loadFileIfExists(k, fmt.Sprintf("%s/%s.yaml", dir, profile))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.Provider(envPrefix, ".", envKeyMapper(defaults())), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// An empty CODESPACE_NAME keeps the configured hint.
	err = k.Load(env.ProviderWithValue(codespaceEnvVar, ".", func(key, value string) (string, any) {
		if key != codespaceEnvVar || value == "" {
			return "", nil
		}

		return "site.codespace_name", value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", codespaceEnvVar, err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper maps APP_SERVER_READ_TIMEOUT to server.read_timeout. Known
// keys are matched exactly so that underscores inside a key survive; unknown
// variables fall back to replacing every underscore with a dot.
func envKeyMapper(known map[string]any) func(string) string {
	byEnv := make(map[string]string, len(known))
	for key := range known {
		byEnv[strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}

	return func(s string) string {
		name := strings.TrimPrefix(s, envPrefix)
		if key, ok := byEnv[name]; ok {
			return key
		}

		return strings.ReplaceAll(strings.ToLower(name), "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
