package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"vinr.eu/launchpad/internal/errs"
)

var (
	ErrInvalid  = errors.New("config: invalid configuration")
	ErrReadFile = errors.New("config: failed to read config file")
)

const (
	ModeLocal  = "local"
	ModeServer = "server"
)

type Config struct {
	Mode            string
	ListenAddr      string
	AllowedOrigins  []string
	LogLevel        string
	LogFormat       string
	TLSDomains      []string
	TLSCacheDir     string
	ShutdownTimeout time.Duration
}

// fileConfig mirrors Config for CONFIG_FILE. Empty values leave defaults alone.
type fileConfig struct {
	Mode            string   `yaml:"mode"`
	ListenAddr      string   `yaml:"listenAddr"`
	AllowedOrigins  []string `yaml:"allowedOrigins"`
	LogLevel        string   `yaml:"logLevel"`
	LogFormat       string   `yaml:"logFormat"`
	TLSDomains      []string `yaml:"tlsDomains"`
	TLSCacheDir     string   `yaml:"tlsCacheDir"`
	ShutdownTimeout string   `yaml:"shutdownTimeout"`
}

func Load() (*Config, error) {
	base := fileConfig{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := readFile(path)
		if err != nil {
			return nil, err
		}
		base = *fc
	}

	cfg := &Config{
		Mode:           getEnv("MODE", orDefault(base.Mode, ModeLocal)),
		ListenAddr:     getEnv("LISTEN_ADDR", orDefault(base.ListenAddr, "0.0.0.0:8000")),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", orDefaultList(base.AllowedOrigins, []string{"http://localhost:3000"})),
		LogLevel:       getEnv("LOG_LEVEL", base.LogLevel),
		LogFormat:      getEnv("LOG_FORMAT", orDefault(base.LogFormat, "text")),
		TLSDomains:     getEnvList("TLS_DOMAINS", base.TLSDomains),
		TLSCacheDir:    getEnv("TLS_CACHE_DIR", orDefault(base.TLSCacheDir, "/var/cache/launchpad/autocert")),
	}

	timeout := getEnv("SHUTDOWN_TIMEOUT", orDefault(base.ShutdownTimeout, "5s"))
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, errs.WrapMsg(ErrInvalid, fmt.Sprintf("SHUTDOWN_TIMEOUT %q", timeout), err)
	}
	cfg.ShutdownTimeout = d

	if err := cfg.applyDefaultsAndValidate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.WrapMsg(ErrReadFile, path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errs.WrapMsg(ErrReadFile, path, err)
	}
	return &fc, nil
}

func (c *Config) applyDefaultsAndValidate() error {
	if c.Mode != ModeLocal && c.Mode != ModeServer {
		return errs.WrapMsg(ErrInvalid, fmt.Sprintf("MODE must be 'local' or 'server', got %q", c.Mode), nil)
	}

	if c.LogLevel == "" {
		c.LogLevel = "debug"
		if c.Mode == ModeServer {
			c.LogLevel = "info"
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errs.WrapMsg(ErrInvalid, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel), nil)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errs.WrapMsg(ErrInvalid, fmt.Sprintf("LOG_FORMAT must be 'text' or 'json', got %q", c.LogFormat), nil)
	}

	if len(c.AllowedOrigins) == 0 {
		return errs.WrapMsg(ErrInvalid, "CORS_ALLOWED_ORIGINS must list at least one origin", nil)
	}

	if len(c.TLSDomains) > 0 && c.Mode != ModeServer {
		return errs.WrapMsg(ErrInvalid, "TLS_DOMAINS is only supported in server mode", nil)
	}

	if c.ShutdownTimeout <= 0 {
		return errs.WrapMsg(ErrInvalid, "SHUTDOWN_TIMEOUT must be positive", nil)
	}

	return nil
}

func (c *Config) TLSEnabled() bool {
	return len(c.TLSDomains) > 0
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Mode=%s ListenAddr=%s AllowedOrigins=%s LogLevel=%s LogFormat=%s TLSDomains=%s",
		c.Mode, c.ListenAddr, strings.Join(c.AllowedOrigins, ","), c.LogLevel, c.LogFormat, strings.Join(c.TLSDomains, ","),
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func orDefaultList(value, fallback []string) []string {
	if len(value) > 0 {
		return value
	}
	return fallback
}
