package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings describes how to reach the relational store.
// DBName is optional for SQLite and names the database to create/use on Postgres.
type DatabaseSettings struct {
	Type            string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN             string `mapstructure:"dsn" validate:"required"`
	DBName          string `mapstructure:"db_name" validate:"required_if=Type postgres"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_seconds" validate:"min=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
