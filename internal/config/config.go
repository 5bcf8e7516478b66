// Package config resolves sprout settings from defaults, an optional YAML
// file and SPROUT_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all resolved settings. Paths are absolute or relative to the
// working directory.
type Config struct {
	DataDir     string
	DBPath      string
	GuestFile   string
	PhotoDir    string
	SessionFile string
	User        string
	Log         LogConfig
}

// LogConfig configures the zap logger. An empty File disables the rotated
// file sink.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const envPrefix = "SPROUT"

// DefaultDataDir returns ~/.sprout.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".sprout"), nil
}

// NewViper builds a viper instance with defaults and env binding. When
// configFile is empty, <dataDir>/config.yaml is used if present.
func NewViper(dataDir, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("db", "")
	v.SetDefault("guest_file", "")
	v.SetDefault("photo_dir", "")
	v.SetDefault("session_file", "")
	v.SetDefault("user", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	if configFile == "" {
		configFile = filepath.Join(v.GetString("data_dir"), "config.yaml")
		if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configFile, err)
	}
	return v, nil
}

// Load resolves a Config, filling unset paths from the data directory.
func Load(v *viper.Viper) (Config, error) {
	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		return Config{}, fmt.Errorf("data_dir must not be empty")
	}

	cfg := Config{
		DataDir:     dataDir,
		DBPath:      orDefault(v.GetString("db"), filepath.Join(dataDir, "sprout.db")),
		GuestFile:   orDefault(v.GetString("guest_file"), filepath.Join(dataDir, "guest_plants.json")),
		PhotoDir:    orDefault(v.GetString("photo_dir"), filepath.Join(dataDir, "photos")),
		SessionFile: orDefault(v.GetString("session_file"), filepath.Join(dataDir, "session.json")),
		User:        strings.TrimSpace(v.GetString("user")),
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
	}
	return cfg, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
