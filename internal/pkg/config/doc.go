// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file with viper, environment variables prefixed
// with EPROFOS_ override file values, and every settings block is validated
// before it is handed to the rest of the application.
package config
