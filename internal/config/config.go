// Package config manages tripdeck configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.seanlatimer.dev/tripdeck/internal/catalog"
	_ "go.seanlatimer.dev/tripdeck/internal/xdginit"
)

const (
	appDirName     = "tripdeck"
	configFileName = "config.json"
	logFileName    = "tripdeck.log"
)

type Config struct {
	DataSource string `json:"data_source"`
	LogFile    string `json:"log_file"`
}

// Keys lists the settable config keys in file order.
var Keys = []string{"data_source", "log_file"}

func GetConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, appDirName), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetLogPath returns the browser log file, creating its directory.
func GetLogPath(cfg Config) (string, error) {
	path := filepath.Join(xdg.StateHome, appDirName, logFileName)
	if strings.TrimSpace(cfg.LogFile) != "" {
		path = cfg.LogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return path, nil
}

// ResolveDataSource picks the catalog location: the flag, then the config
// file, then the bundled snapshot path.
func ResolveDataSource(flag string, cfg Config) string {
	if s := strings.TrimSpace(flag); s != "" {
		return s
	}
	if s := strings.TrimSpace(cfg.DataSource); s != "" {
		return s
	}
	return catalog.DefaultLocation
}

func LoadConfig() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadConfigFile(path, true)
}

// LoadConfigFrom reads an explicit config file. Unlike LoadConfig a missing
// file is an error.
func LoadConfigFrom(path string) (Config, error) {
	return loadConfigFile(path, false)
}

func loadConfigFile(path string, missingOK bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && missingOK {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func SaveConfig(cfg Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "data_source":
		return c.DataSource, nil
	case "log_file":
		return c.LogFile, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set stores value under key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_source":
		c.DataSource = value
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
