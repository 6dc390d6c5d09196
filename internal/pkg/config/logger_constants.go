package config

// Values of logger.log_level. critical is written at error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Values of logger.log_type.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults for the REST API log file.
const (
	DefaultLogFilePath   = "/var/log/eprofos/eprofos-rest-api.log"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 30
)
