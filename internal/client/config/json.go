package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
	"github.com/dmitrijs2005/jobtracker/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Missing keys
// leave the current values untouched.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	StatePath      string          `json:"state_path"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c or -config. It panics when
// the file cannot be read or decoded.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StatePath != "" {
		cfg.StatePath = jc.StatePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
