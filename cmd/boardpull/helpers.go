package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"boardpull/internal/config"
	"boardpull/internal/logging"
	"boardpull/internal/monday"
)

// loadConfig reads the config file named by --config, or the default path
// if one exists there. Without a file, defaults apply and the token must
// come from the environment.
func loadConfig() (*config.Config, error) {
	path := rootFlags.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err != nil {
			return config.Default(), nil
		}
		path = config.DefaultPath
	}
	return config.LoadFromPath(path)
}

// buildClient assembles the monday client from config, falling back to the
// MONDAY_API_TOKEN environment variable when the config names no token.
func buildClient(cfg *config.Config) (*monday.Client, error) {
	token, err := cfg.ResolveToken()
	if err != nil {
		if env := os.Getenv("MONDAY_API_TOKEN"); env != "" {
			token = env
		} else {
			return nil, fmt.Errorf("no API token: set token/token_file in config or MONDAY_API_TOKEN: %w", err)
		}
	}

	return monday.New(token,
		monday.WithEndpoint(cfg.Endpoint),
		monday.WithAPIVersion(cfg.APIVersion),
		monday.WithPageSize(cfg.PageSize),
		monday.WithLogger(logging.New("monday")),
	)
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
