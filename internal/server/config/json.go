package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// JsonConfig is the on-disk shape of the stub configuration. RequireAuth is a
// pointer so an explicit false can override an earlier true.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	BasePath     string `json:"base_path"`
	PerPage      int    `json:"per_page"`
	RequireAuth  *bool  `json:"require_auth"`
	Token        string `json:"token"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays config with the JSON file named by -c or -config.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.BasePath != "" {
		config.BasePath = c.BasePath
	}
	if c.PerPage > 0 {
		config.PerPage = c.PerPage
	}
	if c.RequireAuth != nil {
		config.RequireAuth = *c.RequireAuth
	}
	if c.Token != "" {
		config.Token = c.Token
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
