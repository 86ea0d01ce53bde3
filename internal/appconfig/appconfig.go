// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultPageSize is the number of categories shown per chart page.
	DefaultPageSize = 20
	// DefaultSortMode orders categories by overall mean, highest first.
	DefaultSortMode = "mean-desc"
)

// sortModes are the accepted values for SortMode.
var sortModes = map[string]struct{}{
	"mean-desc": {},
	"mean-asc":  {},
	"alpha":     {},
}

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool   `json:"debug"`
	JSONMode   bool   `json:"jsonMode"`
	Normalize  bool   `json:"normalize"`
	PageSize   int    `json:"pageSize,omitempty"`
	SortMode   string `json:"sortMode,omitempty"`
	CSVDir     string `json:"csvDir,omitempty"`
	LogFile    string `json:"logFile,omitempty"`
	ConfigPath string `json:"-"`
}

// EffectivePageSize returns the configured page size, falling back to the
// default when unset or non-positive.
func (c Config) EffectivePageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// EffectiveSortMode returns the configured sort mode, falling back to the
// default when unset.
func (c Config) EffectiveSortMode() string {
	if strings.TrimSpace(c.SortMode) == "" {
		return DefaultSortMode
	}
	return c.SortMode
}

// LogFilePath returns the path to the application log file. Empty means no
// file sink.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// Validate rejects configurations the commands cannot act on.
func (c Config) Validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("pageSize must not be negative (got %d)", c.PageSize)
	}
	mode := c.EffectiveSortMode()
	if _, ok := sortModes[mode]; !ok {
		return fmt.Errorf("unknown sortMode %q (want mean-desc, mean-asc, or alpha)", mode)
	}
	return nil
}

// Load reads the application configuration from the specified path. A
// missing file is not an error: the zero config with defaults applies.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
