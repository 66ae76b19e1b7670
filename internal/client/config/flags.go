package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   API base URL
//	-k string   API key
//	-s string   session database path
//	-d int      search debounce (milliseconds)
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first, so flags owned by other
// loaders (-c, -env) do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-s", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key sent as x-api-key")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database file")
	debounce := fs.Int("d", int(cfg.SearchDebounce.Milliseconds()), "search debounce (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SearchDebounce = time.Duration(*debounce) * time.Millisecond
}
