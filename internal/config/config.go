package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	DatabasePath string `json:"database_path"`
	// ActionTimeoutSeconds bounds how long a player may sit on a move
	// before the scanner resolves the turn for them.
	ActionTimeoutSeconds int `json:"action_timeout_seconds"`
}

// LoadedConfig carries the runtime settings of the server.
type LoadedConfig struct {
	ServerAddress string
	DatabasePath  string
	ActionTimeout time.Duration
}

// LoadConfig reads the configuration file at path. A missing file is not
// an error: every setting has a usable default, so the server can run
// with no config at all.
func LoadConfig(path string) (*LoadedConfig, error) {
	cfg := &LoadedConfig{
		ServerAddress: ":8080",
		DatabasePath:  "trial.db",
		ActionTimeout: 2 * time.Minute,
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.DatabasePath != "" {
		cfg.DatabasePath = rc.DatabasePath
	}
	if rc.ActionTimeoutSeconds > 0 {
		cfg.ActionTimeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}
	return cfg, nil
}
