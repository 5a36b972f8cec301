package config

import (
	"fmt"
	"strings"
	"time"
)

// Environment variable names.
const (
	EnvListenAddr     = "UNSPOKEN_ADDR"
	EnvDatabaseDSN    = "UNSPOKEN_DATABASE_DSN"
	EnvViewSecret     = "UNSPOKEN_VIEW_SECRET"
	EnvSessionKey     = "UNSPOKEN_SESSION_KEY"
	EnvSessionTTL     = "UNSPOKEN_SESSION_TTL"
	EnvLogLevel       = "UNSPOKEN_LOG_LEVEL"
	EnvS3Bucket       = "UNSPOKEN_S3_BUCKET"
	EnvS3Region       = "UNSPOKEN_S3_REGION"
	EnvS3BaseEndpoint = "UNSPOKEN_S3_ENDPOINT"
	EnvS3AccessKey    = "UNSPOKEN_S3_ACCESS_KEY"
	EnvS3SecretKey    = "UNSPOKEN_S3_SECRET_KEY"
)

// parseEnv overlays cfg with variables that are set and non-blank.
// The view secret is taken verbatim; every other value is trimmed.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str(EnvListenAddr, &cfg.ListenAddr)
	str(EnvDatabaseDSN, &cfg.DatabaseDSN)
	str(EnvSessionKey, &cfg.SessionKey)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvS3Bucket, &cfg.S3Bucket)
	str(EnvS3Region, &cfg.S3Region)
	str(EnvS3BaseEndpoint, &cfg.S3BaseEndpoint)
	str(EnvS3AccessKey, &cfg.S3AccessKey)
	str(EnvS3SecretKey, &cfg.S3SecretKey)

	if v, ok := lookup(EnvViewSecret); ok && v != "" {
		cfg.ViewSecret = v
	}

	if raw, ok := lookup(EnvSessionTTL); ok && strings.TrimSpace(raw) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvSessionTTL, raw, err)
		}
		cfg.SessionTTL = d
	}
	return nil
}
