// Package config persists application settings as JSON under ~/.chatdeck.
// Conversation content and panel widths are deliberately not stored; only
// settings that should survive a restart live here.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"chatdeck/internal/errors"
)

// DefaultReplyDelayMS is the simulated assistant latency when the config
// does not override it.
const DefaultReplyDelayMS = 1500

// Config holds the application configuration
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark", "light")
	ReplyDelayMS         int    `json:"reply_delay_ms,omitempty"`        // Simulated assistant latency in milliseconds
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications when a reply resolves
	WelcomeShown         bool   `json:"welcome_shown,omitempty"`         // Whether the first-run hint has been shown

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatdeck"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		ReplyDelayMS: DefaultReplyDelayMS,
		filePath:     path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks loaded values for sanity.
func (c *Config) Validate() error {
	if c.ReplyDelayMS < 0 {
		return errors.ConfigInvalid("reply_delay_ms must not be negative")
	}
	if c.ReplyDelayMS == 0 {
		c.ReplyDelayMS = DefaultReplyDelayMS
	}
	return nil
}

// Save writes the config to disk. The write goes through a temp file and
// rename so a crash mid-write cannot corrupt the existing config.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	tmp, err := os.CreateTemp(dir, "config-*.json")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmpName, c.filePath); err != nil {
		os.Remove(tmpName)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Clear removes the config file from disk.
func Clear() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = name
}

// ReplyDelay returns the simulated assistant latency as a duration.
func (c *Config) ReplyDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

// SetReplyDelayMS sets the simulated assistant latency.
func (c *Config) SetReplyDelayMS(ms int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ms > 0 {
		c.ReplyDelayMS = ms
	}
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets the desktop notification preference
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetWelcomeShown returns whether the first-run hint has been shown
func (c *Config) GetWelcomeShown() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// SetWelcomeShown marks the first-run hint as shown
func (c *Config) SetWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}
