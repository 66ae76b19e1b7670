package config

import "time"

// Config holds runtime settings for the userdesk console.
//
// Fields:
//   - APIBaseURL: root of the remote user-directory API, without a trailing slash.
//   - APIKey: sent as x-api-key when non-empty.
//   - SessionDB: path of the SQLite file that keeps the session token.
//   - SearchDebounce: quiet period before a search query is applied.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	APIKey         string
	SessionDB      string
	SearchDebounce time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://reqres.in/api"
	c.APIKey = ""
	c.SessionDB = "userdesk.db"
	c.SearchDebounce = 300 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and a dotenv file), JSON (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
