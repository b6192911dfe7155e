// Package config loads runtime configuration for the job tracker client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables, optionally seeded from a .env file.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   REST backend base URL
//	-t int      request timeout (seconds)
//	-d string   local state database path
//	-l string   log level
//
// Environment
//
//	JOBTRACKER_API_URL, JOBTRACKER_REQUEST_TIMEOUT ("30s" or "30"),
//	JOBTRACKER_STATE_PATH, JOBTRACKER_LOG_LEVEL
//
// # JSON schema
//
// Durations are timex.Duration values, either strings like "15s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "request_timeout": "15s",
//	  "state_path": "jobtracker.db",
//	  "log_level": "info"
//	}
package config
