package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-beaddeck/internal/fileutil"
	"github.com/alnah/go-beaddeck/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// appName is the directory searched under the user config directory.
const appName = "go-beaddeck"

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxDateLength        = 50   // "August 24, 2025" or "auto:DD/MM/YYYY"
	MaxTimeoutLength     = 20   // "30s", "1m30s"
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
)

// Defaults matching a bare invocation.
const (
	DefaultRoot        = "."
	DefaultGraphDir    = "output"
	DefaultOutputPath  = "output/bead_web_presentation.pdf"
	DefaultDate        = "August 24, 2025"
	DefaultTimeout     = 30 * time.Second
	DefaultPageSize    = "a4"
	DefaultOrientation = "landscape"
	DefaultMargin      = 0.5
)

// Config holds all configuration for deck generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Graphs GraphsConfig `yaml:"graphs"`
	Output OutputConfig `yaml:"output"`
	Deck   DeckConfig   `yaml:"deck"`
	Render RenderConfig `yaml:"render"`
	Page   PageConfig   `yaml:"page"`
}

// InputConfig defines where bead READMEs are read from.
type InputConfig struct {
	Root string `yaml:"root"` // Directory containing temp/ (default: ".")
}

// GraphsConfig defines where graph PNGs are found.
type GraphsConfig struct {
	Dir string `yaml:"dir"` // Relative to input.root (default: "output")
}

// OutputConfig defines the PDF destination.
type OutputConfig struct {
	Path string `yaml:"path"` // Relative to the working directory; parent must exist
}

// DeckConfig defines title page content.
type DeckConfig struct {
	Date string `yaml:"date"` // Literal text, "auto", "auto:PRESET" or "auto:FORMAT"
}

// RenderConfig defines browser rendering options.
type RenderConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s"
	Style   string `yaml:"style"`   // CSS file replacing the built-in style (empty = built-in)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "landscape")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// Validate checks field lengths and the timeout syntax.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.root", c.Input.Root, MaxPathLength},
		{"graphs.dir", c.Graphs.Dir, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"deck.date", c.Deck.Date, MaxDateLength},
		{"render.timeout", c.Render.Timeout, MaxTimeoutLength},
		{"render.style", c.Render.Style, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses render.timeout. Empty yields DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Render.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidTimeout, c.Render.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidTimeout, c.Render.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration of a bare invocation.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Root: DefaultRoot},
		Graphs: GraphsConfig{Dir: DefaultGraphDir},
		Output: OutputConfig{Path: DefaultOutputPath},
		Deck:   DeckConfig{Date: DefaultDate},
		Render: RenderConfig{Timeout: DefaultTimeout.String()},
		Page: PageConfig{
			Size:        DefaultPageSize,
			Orientation: DefaultOrientation,
			Margin:      DefaultMargin,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
