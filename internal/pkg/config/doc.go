// Package config loads the service configuration from YAML, .env and YATES_*
// environment variables through viper, and validates every section before use.
package config
