package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/wekeepgrowing/loan-eligibility-service/pkg/config"
)

const serviceName = "loan"

type Config struct {
	Service     ServiceConfig     `mapstructure:"service"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Eligibility EligibilityConfig `mapstructure:"eligibility"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Admin       AdminConfig       `mapstructure:"admin"`
}

// LoadConfig reads configs/loan.yaml (or CONFIG_PATH) with LOAN_* env overrides.
func LoadConfig() (*Config, error) {
	loaded, err := pkgconfig.Load(serviceName, Defaults())
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := loaded.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if _, err := c.Service.Location(); err != nil {
		return fmt.Errorf("invalid service.timezone: %w", err)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.Eligibility.MaxReasons < 0 {
		return fmt.Errorf("eligibility.max_reasons must not be negative")
	}
	if c.Admin.MaxAdmins < 1 {
		return fmt.Errorf("admin.max_admins must be at least 1")
	}
	return nil
}

// Defaults returns the built-in settings, keyed by dotted path.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":        "loan-eligibility",
		"service.environment": "development",
		"service.timezone":    "Asia/Kolkata",

		"server.http.host":    "0.0.0.0",
		"server.http.port":    8080,
		"server.grpc.host":    "0.0.0.0",
		"server.grpc.port":    9090,
		"server.cors_origins": []string{"*"},

		"database.driver":             "postgres",
		"database.host":               "localhost",
		"database.port":               5432,
		"database.name":               "loan",
		"database.user":               "postgres",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  5 * time.Minute,
		"database.conn_max_idle_time": 5 * time.Minute,

		"log.level":  "info",
		"log.format": "json",
		"log.output": "stdout",

		"jwt.ttl": 24 * time.Hour,

		"eligibility.strategy":        "product",
		"eligibility.throttle_days":   1,
		"eligibility.max_reasons":     5,
		"eligibility.loan_multiplier": 5,
		"eligibility.require_dob":     true,

		"redis.enabled":      false,
		"redis.addr":         "localhost:6379",
		"redis.db":           0,
		"redis.snapshot_ttl": 5 * time.Minute,

		"storage.enabled": false,
		"storage.region":  "ap-south-1",

		"admin.max_admins": 3,
	}
}
