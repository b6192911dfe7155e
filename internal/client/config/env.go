package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL         = "JOBTRACKER_API_URL"
	EnvRequestTimeout = "JOBTRACKER_REQUEST_TIMEOUT"
	EnvStatePath      = "JOBTRACKER_STATE_PATH"
	EnvLogLevel       = "JOBTRACKER_LOG_LEVEL"
)

// loadDotEnv copies variables from path into the process environment.
// Variables that are already set are kept; a missing file is not an error.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

// parseEnv overlays cfg with JOBTRACKER_* variables. The timeout accepts a
// duration ("30s") or a number of seconds ("30"); anything else panics.
func parseEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv(EnvRequestTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := getenv(EnvStatePath); v != "" {
		cfg.StatePath = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func parseTimeout(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid timeout %q", EnvRequestTimeout, v)
	}
	return d, nil
}
