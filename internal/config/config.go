// Package config loads and caches the moonbrief configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Config represents the full config.json schema for moonbrief.
type Config struct {
	Studio      string `json:"studio" mapstructure:"studio"`
	OutboxDir   string `json:"outboxDir" mapstructure:"outboxDir"`
	ArchivePath string `json:"archivePath" mapstructure:"archivePath"`
	ExportDir   string `json:"exportDir" mapstructure:"exportDir"`
}

// Default returns the configuration used when no config.json exists: studio
// branding plus a briefs workspace under the user's home directory.
func Default() *Config {
	base := ".moonbrief"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".moonbrief")
	}
	return &Config{
		Studio:      "Moonworks Creative",
		OutboxDir:   filepath.Join(base, "outbox"),
		ArchivePath: filepath.Join(base, "archive.db"),
		ExportDir:   filepath.Join(base, "exports"),
	}
}

// singleton holds the loaded config and the directory it came from.
var (
	globalCfg  *Config
	globalRoot string
	mu         sync.RWMutex
)

// Load reads config.json from the given directory and caches the result.
// Missing fields fall back to defaults so partial configs stay valid.
func Load(root string) (*Config, error) {
	cfgPath := filepath.Join(root, "config.json")

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("reading config.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config.json: %w", err)
	}

	mu.Lock()
	globalCfg = cfg
	globalRoot = root
	mu.Unlock()

	return cfg, nil
}

// LoadOrDefault loads config.json from root, falling back to defaults when
// the file does not exist. Parse errors still surface.
func LoadOrDefault(root string) (*Config, error) {
	cfg, err := Load(root)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		mu.Lock()
		globalCfg = cfg
		globalRoot = root
		mu.Unlock()
		return cfg, nil
	}
	return nil, err
}

// Get returns the cached config. It panics if neither Load nor LoadOrDefault
// has been called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		panic("config.Get() called before config.Load()")
	}
	return globalCfg
}

// Root returns the directory config.json was loaded from.
func Root() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalRoot
}

// Save writes the provided config back to config.json in root.
func Save(root string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	cfgPath := filepath.Join(root, "config.json")
	if err := os.WriteFile(cfgPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing config.json: %w", err)
	}

	mu.Lock()
	globalCfg = cfg
	globalRoot = root
	mu.Unlock()

	return nil
}
