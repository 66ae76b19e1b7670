package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvEndpointAddr = "DIRECTORY_ADDR"
	EnvBasePath     = "DIRECTORY_BASE_PATH"
	EnvPerPage      = "DIRECTORY_PER_PAGE"
	EnvRequireAuth  = "DIRECTORY_REQUIRE_AUTH"
	EnvToken        = "DIRECTORY_TOKEN"
	EnvLogLevel     = "DIRECTORY_LOG_LEVEL"
)

// parseEnv loads the dotenv file (from -env, else ./.env if present) into the
// process environment without overriding variables already set, then reads
// the DIRECTORY_* variables. Malformed numbers or booleans panic.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv(EnvEndpointAddr); v != "" {
		cfg.EndpointAddr = v
	}
	if v := os.Getenv(EnvBasePath); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv(EnvPerPage); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvPerPage, err))
		}
		cfg.PerPage = n
	}
	if v := os.Getenv(EnvRequireAuth); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvRequireAuth, err))
		}
		cfg.RequireAuth = b
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
