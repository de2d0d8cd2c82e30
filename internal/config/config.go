// Package config handles persistent client configuration: the server URL
// and the stored bearer token, kept as JSON under the XDG config home.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/tidwall/sjson"
)

const (
	appName        = "bizcli"
	configFileName = "bizcli.json"

	// DefaultServerURL is used when no server is configured.
	DefaultServerURL = "http://localhost:8080/api"
)

// Config is the on-disk client configuration.
type Config struct {
	ServerURL string `json:"server_url,omitempty"`
	Token     string `json:"token,omitempty"`
	Username  string `json:"username,omitempty"`
	Debug     bool   `json:"debug,omitempty"`
}

// GlobalConfigPath returns the path to the global configuration file.
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// Load reads the global configuration, applying defaults for missing
// fields. A missing file is not an error.
func Load() (*Config, error) {
	return LoadFromFile(GlobalConfigPath())
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	//nolint:gosec // G304: path is from trusted config locations, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
}

// Save writes the configuration to the global config file.
func Save(cfg *Config) error {
	return SaveToFile(cfg, GlobalConfigPath())
}

// SaveToFile writes the configuration to a specific file path.
func SaveToFile(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// The token lives here, so keep the file private.
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// SetConfigField updates a single field in the config file using JSON path
// notation. This uses sjson for surgical updates - only the specified field
// is modified, other keys in the file are preserved byte for byte.
func SetConfigField(key string, value any) error {
	return setConfigFieldAt(GlobalConfigPath(), key, value)
}

func setConfigFieldAt(path, key string, value any) error {
	//nolint:gosec // G304: path is from trusted config locations, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if mkErr := os.MkdirAll(filepath.Dir(path), 0o750); mkErr != nil {
				return fmt.Errorf("creating config directory: %w", mkErr)
			}
			data = []byte("{}")
		} else {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	newData, err := sjson.Set(string(data), key, value)
	if err != nil {
		return fmt.Errorf("setting config field %q: %w", key, err)
	}

	//nolint:gosec // 0o600 is intentionally restrictive.
	if err := os.WriteFile(path, []byte(newData), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// StoreToken persists the bearer token and the username it belongs to
// without disturbing the rest of the file.
func StoreToken(token, username string) error {
	if err := SetConfigField("token", token); err != nil {
		return err
	}
	return SetConfigField("username", username)
}

// ClearToken removes the stored token, keeping the server URL and other
// settings intact. Used on logout and on a rejected token.
func ClearToken() error {
	return clearTokenAt(GlobalConfigPath())
}

func clearTokenAt(path string) error {
	//nolint:gosec // G304: path is from trusted config locations, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	newData, err := sjson.Delete(string(data), "token")
	if err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}

	//nolint:gosec // 0o600 is intentionally restrictive.
	if err := os.WriteFile(path, []byte(newData), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
