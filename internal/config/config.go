package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Generated artifact settings
	Header string `yaml:"header"`

	// Directory scanning settings
	Extensions    []string `yaml:"extensions"`
	PathsToIgnore []string `yaml:"paths_to_ignore"`

	// Console settings
	LogLevel string `yaml:"log_level"`
	Progress bool   `yaml:"progress"`

	// Snapshot settings
	SnapshotFormat string `yaml:"snapshot_format"`
	OutputDir      string `yaml:"output_dir"`

	// Watch settings
	Debounce time.Duration `yaml:"debounce"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	NameFilter  string
	ShowPlugins bool
	Format      string
	Output      string
	Snapshot    string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Header:         DefaultHeader,
		LogLevel:       DefaultLogLevel,
		SnapshotFormat: DefaultSnapshotFormat,
		OutputDir:      DefaultOutputDir,
		Debounce:       DefaultDebounce,
	}
	// Copy default slices so callers can't mutate the package defaults
	cfg.Extensions = append([]string(nil), DefaultExtensions...)
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	return cfg
}

// Load applies the .env file, the YAML config file and TCGEN_* variables, in that order.
// Missing default files are fine; a config file named by TCGEN_CONFIG must exist.
func (c *Config) Load() error {
	if err := godotenv.Load(DefaultEnvFile); err != nil {
		// .env file might not exist, that's okay - use environment variables
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
	}

	path := os.Getenv(EnvConfigFile)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := c.LoadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return c.applyEnvOverrides()
}

// LoadFile merges a YAML config file into the config
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return c.validate()
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvHeader); v != "" {
		c.Header = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvSnapshotFormat); v != "" {
		c.SnapshotFormat = v
	}
	if v := os.Getenv(EnvExtensions); v != "" {
		var exts []string
		for _, ext := range strings.Split(v, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		c.Extensions = exts
	}
	if v := os.Getenv(EnvProgress); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvProgress, err)
		}
		c.Progress = b
	}
	if v := os.Getenv(EnvDebounce); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebounce, err)
		}
		c.Debounce = d
	}
	return c.validate()
}

func (c *Config) validate() error {
	switch c.SnapshotFormat {
	case FormatJSON, FormatMsgpack:
	default:
		return fmt.Errorf("unknown snapshot format %q", c.SnapshotFormat)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	}
	return nil
}

// GetFormat returns the snapshot format, using flag if provided
func (c *Config) GetFormat() string {
	if c.Flags.Format != "" {
		return c.Flags.Format
	}
	return c.SnapshotFormat
}

// GetOutputPath returns the snapshot path.
// Without an --output flag the file is <OutputDir>/catalog.<format>.
func (c *Config) GetOutputPath() string {
	p := c.Flags.Output
	if p == "" {
		p = filepath.Join(c.OutputDir, DefaultSnapshotName+"."+c.GetFormat())
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// HasExtension reports whether a file name ends in one of the configured extensions
func (c *Config) HasExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
