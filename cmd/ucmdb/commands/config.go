package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kwpaschal/ucmdb-rest/internal/constants"
)

// CLIConfig is the persisted CLI state: the targeted server and the session
// token from the last login.
type CLIConfig struct {
	Server         string    `yaml:"server,omitempty"`
	Username       string    `yaml:"username,omitempty"`
	Token          string    `yaml:"token,omitempty"`
	TokenExpiresAt time.Time `yaml:"token_expires_at,omitempty"`
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".ucmdb", "config.yml")
}

// loadConfig reads the persisted CLI config. A missing or unreadable file
// yields an empty config.
func loadConfig() *CLIConfig {
	config := &CLIConfig{}

	path := configPath()
	if path == "" {
		return config
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is derived from the home directory
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfig writes the CLI config, creating the config directory if needed.
// The file holds a session token, so it is written with owner-only
// permissions.
func saveConfig(config *CLIConfig) error {
	path := configPath()
	if path == "" {
		return os.ErrNotExist
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
