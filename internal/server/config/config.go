// Package config handles configuration for the directory stub server,
// including defaults, a dotenv/environment overlay, JSON and command-line flags.
package config

import "github.com/dmitrijs2005/userdesk/internal/directory"

// Config holds runtime settings for the directory stub.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP listener.
//   - BasePath: prefix the API is mounted under; clients use http://host<BasePath>.
//   - PerPage: page size of GET /users.
//   - RequireAuth: reject /users requests without the issued bearer token.
//   - Token: the token handed out on login.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr string
	BasePath     string
	PerPage      int
	RequireAuth  bool
	Token        string
	LogLevel     string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.BasePath = "/api"
	c.PerPage = directory.DefaultPerPage
	c.RequireAuth = false
	c.Token = directory.DefaultToken
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
