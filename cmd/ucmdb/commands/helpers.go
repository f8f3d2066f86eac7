package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kwpaschal/ucmdb-rest/internal/constants"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdbclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrServerRequired      = errors.New("server endpoint is required (use --server or run 'ucmdb login')")
	ErrViewNameRequired    = errors.New("view name is required")
	ErrSettingNameRequired = errors.New("setting name is required")
	ErrProbeNameRequired   = errors.New("probe name is required")
)

// createClient builds a UCMDB client from the persisted config and any flag
// overrides bound into viper.
func createClient() (ucmdb.Client, error) {
	server := viper.GetString("server")
	if server == "" {
		return nil, ErrServerRequired
	}

	config := &ucmdb.Config{
		Endpoint:      server,
		Username:      viper.GetString("username"),
		Password:      viper.GetString("password"),
		AccessToken:   viper.GetString("token"),
		SkipTLSVerify: viper.GetBool("skip-ssl-validation"),
		Debug:         viper.GetBool("verbose"),
	}

	// A saved session token takes precedence over saved credentials so login
	// survives across invocations without re-authenticating.
	if config.AccessToken == "" {
		saved := loadConfig()
		if saved.Token != "" && saved.Server == server {
			config.AccessToken = saved.Token
		}
	}

	client, err := ucmdbclient.New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

// printYAML renders v as YAML on stdout.
func printYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return nil
}

// truncateCell trims long values so tables stay readable on a terminal.
func truncateCell(value string) string {
	if len(value) <= constants.MaxTableCellWidth {
		return value
	}

	return value[:constants.MaxTableCellWidth-3] + "..."
}
