package app

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	DefaultConfigDir  = "Config"
	DefaultOutputPath = "vehicle_storage_list.txt"

	lootFileName     = "loot.xml"
	entitiesFileName = "entityclasses.xml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigDir    string // directory holding the two XML sources
	LootPath     string // defaults to ConfigDir/loot.xml
	EntitiesPath string // defaults to ConfigDir/entityclasses.xml
	OutputPath   string
	SettingsPath string // optional HCL file or directory
	Strict       bool   // abort on an unusable entity source

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills derived paths.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = DefaultConfigDir
	}
	if cfg.LootPath == "" {
		cfg.LootPath = filepath.Join(cfg.ConfigDir, lootFileName)
	}
	if cfg.EntitiesPath == "" {
		cfg.EntitiesPath = filepath.Join(cfg.ConfigDir, entitiesFileName)
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
