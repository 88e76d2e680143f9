// ABOUTME: Lifestyle configuration management with backend selection.
// ABOUTME: Handles program anchor date, data paths, and storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lifestyle/internal/charm"
	"github.com/harperreed/lifestyle/internal/models"
	"github.com/harperreed/lifestyle/internal/program"
	"github.com/harperreed/lifestyle/internal/storage"
)

// Config stores lifestyle tool configuration.
type Config struct {
	// Backend selects the storage backend: "json" (default), "sqlite",
	// or "charm" (Charm Cloud KV with device sync).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. JSON puts
	// lifestyle.json here, SQLite puts lifestyle.db here. Supports ~
	// expansion. Defaults to ~/.local/share/lifestyle.
	DataDir string `json:"data_dir,omitempty"`

	// ProgramStart overrides the program anchor date (YYYY-MM-DD).
	// Empty means the built-in default program start.
	ProgramStart string `json:"program_start,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "json".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "json"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// Calendar returns the program calendar for the configured anchor date.
// A missing or malformed anchor falls back to the default program.
func (c *Config) Calendar() *program.Calendar {
	if c.ProgramStart == "" {
		return program.Default()
	}
	start, err := models.ParseDate(c.ProgramStart)
	if err != nil {
		return program.Default()
	}
	return program.New(start)
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

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (storage.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "json":
		return storage.NewJSONStore(dataDir)
	case "sqlite":
		dbPath := filepath.Join(dataDir, "lifestyle.db")
		return storage.OpenSQLite(dbPath)
	case "charm":
		return charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lifestyle", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
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
