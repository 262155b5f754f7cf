package config

import (
	"flag"
	"os"
	"time"

	"github.com/cmdcable/portal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the billing backend
//	-t int      request timeout in seconds
//	-d string   path of the local session database
//
// Args are filtered to only the flags handled here, so the config-file
// flag parsed elsewhere does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the billing backend")
	timeoutSecs := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeoutSecs) * time.Second
}
