package commands

import (
	"fmt"
	"os"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/rest-app.yaml"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// addConfigFlag registers --config on cmd, defaulting to CONFIG_PATH.
func addConfigFlag(cmd *cobra.Command) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cmd.Flags().String("config", path, "Path to the REST API configuration file")
}

func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	return config.InitializeRestConfig(path)
}
