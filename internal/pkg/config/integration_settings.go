package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Mail provider constants
const (
	MailProviderSES = "ses"
	MailProviderLog = "log"
)

// RedisSettings configures the dashboard cache. A disabled cache falls back to
// recomputing on every request.
type RedisSettings struct {
	Enabled    bool   `mapstructure:"enabled"`
	Addr       string `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db" validate:"min=0,max=15"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"min=0"`
}

// TTL returns the cache entry lifetime, five minutes when unset.
func (s RedisSettings) TTL() time.Duration {
	if s.TTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(s.TTLSeconds) * time.Second
}

// KafkaSettings configures the audit event publisher.
type KafkaSettings struct {
	Enabled  bool     `mapstructure:"enabled"`
	Brokers  []string `mapstructure:"brokers" validate:"required_if=Enabled true"`
	Topic    string   `mapstructure:"topic" validate:"required_if=Enabled true"`
	ClientID string   `mapstructure:"client_id"`
}

// MailSettings configures outgoing notifications.
type MailSettings struct {
	Provider        string   `mapstructure:"provider" validate:"required,oneof=ses log"`
	Region          string   `mapstructure:"region"`
	AccessKey       string   `mapstructure:"access_key"`
	SecretKey       string   `mapstructure:"secret_key"`
	FromEmail       string   `mapstructure:"from_email" validate:"required,email"`
	FromName        string   `mapstructure:"from_name"`
	AlertRecipients []string `mapstructure:"alert_recipients" validate:"dive,email"`
}

// ExportStorageSettings configures archiving of dashboard exports to S3.
type ExportStorageSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Bucket  string `mapstructure:"bucket" validate:"required_if=Enabled true"`
	Region  string `mapstructure:"region" validate:"required_if=Enabled true"`
	Prefix  string `mapstructure:"prefix"`
}

// AuthSettings configures bearer token verification.
type AuthSettings struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer    string `mapstructure:"issuer"`
}

func validateStruct(name string, s interface{}) error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}
	return nil
}

// Validate checks RedisSettings.
func (s *RedisSettings) Validate() error { return validateStruct("RedisSettings", s) }

// Validate checks KafkaSettings.
func (s *KafkaSettings) Validate() error { return validateStruct("KafkaSettings", s) }

// Validate checks MailSettings.
func (s *MailSettings) Validate() error {
	if err := validateStruct("MailSettings", s); err != nil {
		return err
	}
	if s.Provider == MailProviderSES && s.Region == "" {
		return fmt.Errorf("region is required for the ses mail provider")
	}
	return nil
}

// Validate checks ExportStorageSettings.
func (s *ExportStorageSettings) Validate() error {
	return validateStruct("ExportStorageSettings", s)
}

// Validate checks AuthSettings.
func (s *AuthSettings) Validate() error { return validateStruct("AuthSettings", s) }
