package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   REST backend base URL
//	-t int      request timeout (in seconds)
//	-d string   path of the local state database
//	-l string   log level
//
// Only these flags are taken from args, so -c/-config and unknown flags do
// not disturb parsing. It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "REST backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StatePath, "d", cfg.StatePath, "local state database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if isSet(fs, "t") {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
