package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// parseFlags populates stub Config fields from command-line flags.
//
//	-a string   bind address (e.g. ":8080")
//	-b string   API base path (e.g. "/api")
//	-p int      users per page
//	-r bool     require the bearer token on /users routes
//	-t string   token issued on login
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first. A boolean flag must be
// written as -r=true or -r=false when followed by another flag's value.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-p", "-r", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.BasePath, "b", config.BasePath, "API base path")
	fs.IntVar(&config.PerPage, "p", config.PerPage, "users per page")
	fs.BoolVar(&config.RequireAuth, "r", config.RequireAuth, "require bearer token")
	fs.StringVar(&config.Token, "t", config.Token, "token issued on login")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
