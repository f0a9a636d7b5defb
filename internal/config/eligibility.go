package config

import "time"

type EligibilityConfig struct {
	// Strategy is product or legacy_rule.
	Strategy string `mapstructure:"strategy"`
	// ThrottleDays is how many calendar days a check blocks the next one.
	ThrottleDays int `mapstructure:"throttle_days"`
	// MaxReasons caps the rejection reasons returned to callers.
	MaxReasons int `mapstructure:"max_reasons"`
	// LoanMultiplier sizes the loan estimate when a product has no cap.
	LoanMultiplier float64 `mapstructure:"loan_multiplier"`
	// RequireDOB rejects intake without a date of birth. When false, age
	// gates are skipped for customers without one.
	RequireDOB bool `mapstructure:"require_dob"`
}

type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`
}

type StorageConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	// Endpoint overrides the S3 endpoint for S3-compatible stores.
	Endpoint string `mapstructure:"endpoint"`
	// PublicBaseURL prefixes object keys to build public image URLs.
	PublicBaseURL string `mapstructure:"public_base_url"`
}
