package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the job tracker client.
//
// Fields:
//   - APIBaseURL: base URL of the REST backend, e.g. http://127.0.0.1:8000.
//   - RequestTimeout: upper bound for a single backend request.
//   - StatePath: SQLite file holding the persisted token and preferences.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StatePath      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.StatePath = "jobtracker.db"
	c.LogLevel = "info"
}

// Load builds a Config from defaults, then the JSON file named by -c/-config,
// then the environment, then the remaining flags in args. Later sources win.
func Load(args []string, getenv func(string) string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, getenv)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load over the process arguments and environment. Variables
// from a .env file in the working directory are picked up first.
func LoadConfig() *Config {
	loadDotEnv(".env")
	return Load(os.Args[1:], os.Getenv)
}
