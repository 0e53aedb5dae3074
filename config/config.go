// File: config/config.go
// Author: momentics <momentics@gmail.com>
//
// YAML-backed configuration for the example servers.

package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// ServerProperties configures the echo example server. ghodss/yaml maps
// YAML keys through the json tags.
type ServerProperties struct {
	Addr       string `json:"addr"`
	ReadChunk  int    `json:"readChunk"`
	LogLevel   string `json:"logLevel"`
	AcceptIdle int    `json:"acceptIdleMs"`
}

// Default returns the baseline configuration.
func Default() *ServerProperties {
	return &ServerProperties{
		Addr:       "127.0.0.1:7070",
		ReadChunk:  16 * 1024,
		LogLevel:   "info",
		AcceptIdle: 5,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*ServerProperties, error) {
	props := Default()
	if path == "" {
		return props, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, props); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if props.ReadChunk <= 0 {
		return nil, fmt.Errorf("config %s: readChunk must be positive", path)
	}
	return props, nil
}
