package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bankist/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-s string   path to a JSON seed file
//	-t int      session timeout in seconds
//	-l string   log level
//
// Args are pre-filtered with flagx.FilterArgs so flags owned by other
// packages (-c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.SeedFile, "s", cfg.SeedFile, "path to JSON seed file")
	timeout := fs.Int("t", int(cfg.SessionTimeout.Seconds()), "session timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTimeout = time.Duration(*timeout) * time.Second
}
