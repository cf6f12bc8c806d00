// ABOUTME: fitlog configuration management.
// ABOUTME: Loads settings from the XDG config file with FITLOG_* environment overrides.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/viper"
)

// Keys accepted by Set and read from the config file.
const (
	KeyDataDir  = "data_dir"
	KeyLogLevel = "log_level"
)

// DefaultLogLevel is used when no log level is configured.
const DefaultLogLevel = "warn"

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config stores fitlog configuration.
type Config struct {
	// DataDir is the directory holding fitness_tracker.db.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fitlog.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.LogLevel)
}

// DBPath returns the database file path inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), storage.DBFileName)
}

// OpenStorage opens the record store at the configured location.
func (c *Config) OpenStorage() (*storage.Store, error) {
	return storage.Open(c.DBPath())
}

// Set assigns a config value by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyDataDir:
		c.DataDir = value
	case KeyLogLevel:
		level := strings.ToLower(value)
		if !validLogLevels[level] {
			return fmt.Errorf("invalid log level %q (use debug, info, warn, or error)", value)
		}
		c.LogLevel = level
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Keys returns the settable config keys in sorted order.
func Keys() []string {
	keys := []string{KeyDataDir, KeyLogLevel}
	sort.Strings(keys)
	return keys
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog", "config.json")
}

// Load reads config from disk. FITLOG_DATA_DIR and FITLOG_LOG_LEVEL
// override the file. A missing file yields an empty Config.
func Load() (*Config, error) {
	return load(true)
}

// LoadFile reads only the config file, ignoring environment overrides.
// Use it before Save so env-only values are not persisted.
func LoadFile() (*Config, error) {
	return load(false)
}

func load(withEnv bool) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	if withEnv {
		v.SetEnvPrefix("FITLOG")
		for _, key := range Keys() {
			if err := v.BindEnv(key); err != nil {
				return nil, fmt.Errorf("bind env %s: %w", key, err)
			}
		}
	}

	path := GetConfigPath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	return &Config{
		DataDir:  v.GetString(KeyDataDir),
		LogLevel: v.GetString(KeyLogLevel),
	}, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
