package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. EPROFOS_PORT.
const EnvPrefix = "EPROFOS"

// RestConfig aggregates the settings of the REST API process.
type RestConfig struct {
	Port          string                `mapstructure:"port" validate:"required,numeric"`
	Database      DatabaseSettings      `mapstructure:"database"`
	Logger        LoggerSettings        `mapstructure:"logger"`
	Redis         RedisSettings         `mapstructure:"redis"`
	Kafka         KafkaSettings         `mapstructure:"kafka"`
	Mail          MailSettings          `mapstructure:"mail"`
	ExportStorage ExportStorageSettings `mapstructure:"export_storage"`
	Auth          AuthSettings          `mapstructure:"auth"`
	AllowOrigins  []string              `mapstructure:"allow_origins"`
}

// Validate checks the top level fields and every nested settings block.
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}

	checks := []func() error{
		c.Database.Validate,
		c.Logger.Validate,
		c.Redis.Validate,
		c.Kafka.Validate,
		c.Mail.Validate,
		c.ExportStorage.Validate,
		c.Auth.Validate,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// InitializeRestConfig loads the configuration file at path. A .env file in the
// working directory is loaded first when present so that secrets can stay out
// of the YAML file.
func InitializeRestConfig(path string) (*RestConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", DefaultLogFilePath)
	v.SetDefault("logger.max_size", DefaultLogMaxSizeMB)
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age", DefaultLogMaxAgeDays)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "eprofos.db")
	v.SetDefault("mail.provider", MailProviderLog)
	v.SetDefault("mail.from_email", "no-reply@eprofos.fr")
	v.SetDefault("mail.from_name", "EPROFOS")
	v.SetDefault("redis.ttl_seconds", 300)
	v.SetDefault("kafka.topic", "eprofos.audit")
	v.SetDefault("auth.issuer", "eprofos")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("allow_origins", []string{"*"})
}
