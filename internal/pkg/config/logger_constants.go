package config

// Log levels accepted in logger.log_level
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log outputs accepted in logger.log_type. console is text on stdout, json is
// one JSON object per line on stdout, file is JSON in a rotated file.
const (
	LogTypeConsole = "console"
	LogTypeJSON    = "json"
	LogTypeFile    = "file"
)
