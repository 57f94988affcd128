package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences and gateway settings
type Config struct {
	ConfirmDelete bool `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation for delete/clear

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging

	// Offline gateway configuration
	ListenAddr   string   `yaml:"listen_addr" json:"listen_addr"`     // Gateway listen address
	UpstreamURL  string   `yaml:"upstream_url" json:"upstream_url"`   // Origin the app shell is fetched from
	CacheDir     string   `yaml:"cache_dir" json:"cache_dir"`         // Root directory for cache generations
	CacheVersion string   `yaml:"cache_version" json:"cache_version"` // Version tag of the current shell bundle
	Manifest     []string `yaml:"manifest" json:"manifest"`           // Asset paths cached for offline use
}

// DefaultManifest is the app shell cached for offline use
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/style.css",
	"/app.js",
	"/manifest.json",
	"/icons/icon-192.png",
	"/icons/icon-512.png",
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	cacheDir := ""
	if home != "" {
		logPath = filepath.Join(home, ".dayplan", "logs", "dayplan.log")
		cacheDir = filepath.Join(home, ".dayplan", "cache")
	}

	return &Config{
		ConfirmDelete: true,
		LogLevel:      getEnv("DAYPLAN_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("DAYPLAN_LOG_FILE", logPath),
		LogConsole:    getEnv("DAYPLAN_LOG_CONSOLE", "false") == "true",
		ListenAddr:    getEnv("DAYPLAN_LISTEN_ADDR", ":8080"),
		UpstreamURL:   getEnv("DAYPLAN_UPSTREAM_URL", "http://localhost:3000"),
		CacheDir:      getEnv("DAYPLAN_CACHE_DIR", cacheDir),
		CacheVersion:  getEnv("DAYPLAN_CACHE_VERSION", "v1"),
		Manifest:      append([]string{}, DefaultManifest...),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// DefaultPath returns ~/.dayplan/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dayplan", "config.yaml"), nil
}

// Load loads config from the default path, falling back to defaults when
// no config file exists
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads config from an explicit path
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.CacheVersion != "" && strings.ContainsAny(cfg.CacheVersion, `/\`) {
		return nil, fmt.Errorf("invalid cache_version %q: must not contain path separators", cfg.CacheVersion)
	}

	return cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo saves config to an explicit path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
