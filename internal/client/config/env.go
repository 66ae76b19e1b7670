package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

const (
	EnvAPIBaseURL     = "USERDESK_API_URL"
	EnvAPIKey         = "USERDESK_API_KEY"
	EnvSessionDB      = "USERDESK_SESSION_DB"
	EnvSearchDebounce = "USERDESK_SEARCH_DEBOUNCE"
	EnvLogLevel       = "USERDESK_LOG_LEVEL"
)

// parseEnv overlays Config with USERDESK_* variables. Values come from the
// dotenv file named by -env (or ./.env when present) and the process
// environment, the latter winning. A missing file given with -env, an
// unreadable file or a malformed duration panics.
func parseEnv(cfg *Config) {
	vars := readEnvFile()

	for _, key := range []string{EnvAPIBaseURL, EnvAPIKey, EnvSessionDB, EnvSearchDebounce, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	if v := vars[EnvAPIBaseURL]; v != "" {
		cfg.APIBaseURL = v
	}
	if v := vars[EnvAPIKey]; v != "" {
		cfg.APIKey = v
	}
	if v := vars[EnvSessionDB]; v != "" {
		cfg.SessionDB = v
	}
	if v := vars[EnvSearchDebounce]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvSearchDebounce, err))
		}
		cfg.SearchDebounce = d
	}
	if v := vars[EnvLogLevel]; v != "" {
		cfg.LogLevel = v
	}
}

func readEnvFile() map[string]string {
	path := flagx.EnvFileFlag()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}
		}
		panic(err)
	}
	return vars
}
