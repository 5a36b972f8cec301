// Package config loads runtime settings for the Unspoken server and CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, an optional JSON file (-c / -config), environment
// variables (a .env file in the working directory is loaded first when
// present) and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings.
//
// Fields:
//   - ListenAddr: bind address of the HTTP server.
//   - DatabaseDSN: SQLite file path / "file:" URI, or a postgres:// URL.
//   - ViewSecret: shared secret guarding the view-all page. Empty disables it.
//   - SessionKey: HMAC key for view passes. Empty means a random per-process key.
//   - SessionTTL: lifetime of a view pass.
//   - LogLevel: debug, info, warn or error.
//   - S3*: object storage used by the backup command.
type Config struct {
	ListenAddr     string
	DatabaseDSN    string
	ViewSecret     string
	SessionKey     string
	SessionTTL     time.Duration
	LogLevel       string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8501"
	c.DatabaseDSN = "letters.db"
	c.ViewSecret = ""
	c.SessionKey = ""
	c.SessionTTL = 10 * time.Minute
	c.LogLevel = "info"
	c.S3Bucket = "unspoken-backups"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.S3AccessKey = ""
	c.S3SecretKey = ""
}

// Validate reports settings that would keep the application from starting.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ListenAddr) == "" {
		errs = append(errs, errors.New("listen address is empty"))
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		errs = append(errs, errors.New("database DSN is empty"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session TTL must be positive, got %s", c.SessionTTL))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and os.Args, then validates it.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Load(os.Args[1:], os.LookupEnv)
}

// Load is LoadConfig with explicit arguments and environment lookup.
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
