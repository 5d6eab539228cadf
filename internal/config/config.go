// Package config loads the boardpull configuration file, a YAML or JSON
// document holding the API connection settings and the boards tracked by
// snapshot refresh.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"boardpull/internal/monday"
)

// DefaultPath is the conventional per-workspace config location.
const DefaultPath = ".boardpull/config.yaml"

// Config holds API connection settings and snapshot sources.
type Config struct {
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	APIVersion string `json:"api_version" yaml:"api_version"`
	// Token is the API token itself; TokenFile points at a file whose first
	// line is the token. Token wins when both are set.
	Token     string `json:"token" yaml:"token"`
	TokenFile string `json:"token_file" yaml:"token_file"`
	PageSize  int    `json:"page_size" yaml:"page_size"`
	// Boards are the board IDs refreshed by `boardpull snapshot` when no
	// IDs are given on the command line.
	Boards []string `json:"boards" yaml:"boards"`
}

// LoadFromPath reads a config file (YAML or JSON) and returns the parsed,
// defaulted Config. Format is detected by extension (.yaml/.yml/.json) or
// by content.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config from bytes. ext is the file extension for a format
// hint; empty = detect from content (JSON starts with "{", else YAML).
func Load(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	var cfg Config
	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse config: unsupported extension %q", ext)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config with every field at its default, for running
// without a config file (token from environment or flags).
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = monday.DefaultEndpoint
	}
	if c.APIVersion == "" {
		c.APIVersion = monday.DefaultAPIVersion
	}
	if c.PageSize <= 0 {
		c.PageSize = monday.DefaultPageSize
	}
}

// ResolveToken returns the API token: Token verbatim if set, otherwise the
// first line of TokenFile.
func (c *Config) ResolveToken() (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}
	if c.TokenFile == "" {
		return "", fmt.Errorf("config: no token or token_file configured")
	}
	return ReadToken(c.TokenFile)
}

// ReadToken reads the first line of a token file (e.g. .monday-api-token)
// and returns it trimmed.
func ReadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(strings.Split(string(data), "\n")[0])
	if line == "" {
		return "", fmt.Errorf("token file %s is empty", path)
	}
	return line, nil
}
