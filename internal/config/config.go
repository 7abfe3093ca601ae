package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-om2svg/internal/fileutil"
	"github.com/alnah/go-om2svg/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength   = 4096
	MaxAspectLength = 30 // "xMidYMid slice"
	MaxIndentLength = 8
	MaxTitleLength  = 200
	MaxDPI          = 2400
	MaxWorkers      = 64
)

// Config holds all configuration for batch printing.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Batch  BatchConfig  `yaml:"batch"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// RenderConfig mirrors the printer options.
type RenderConfig struct {
	PreserveAspectRatio string  `yaml:"preserveAspectRatio"` // default "none"
	DPI                 float64 `yaml:"dpi"`                 // 0 = 72
	Indent              string  `yaml:"indent"`              // default two spaces
	Compact             bool    `yaml:"compact"`
}

// BatchConfig defines parallel processing options.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 = auto
}

// ReportConfig defines the HTML report written next to each SVG.
type ReportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"` // Empty = document file name
	Style   string `yaml:"style"` // chroma style name, default "github"
}

// LogConfig defines diagnostics logging.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error" (default: off)
}

// Validate checks field values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("render.preserveAspectRatio", c.Render.PreserveAspectRatio, MaxAspectLength); err != nil {
		return err
	}
	if c.Render.PreserveAspectRatio != "" && !ValidAspectRatio(c.Render.PreserveAspectRatio) {
		return fmt.Errorf("%w: render.preserveAspectRatio %q", ErrInvalidValue, c.Render.PreserveAspectRatio)
	}
	if c.Render.DPI < 0 || c.Render.DPI > MaxDPI {
		return fmt.Errorf("%w: render.dpi must be between 0 and %d, got %g", ErrInvalidValue, MaxDPI, c.Render.DPI)
	}
	if err := validateFieldLength("render.indent", c.Render.Indent, MaxIndentLength); err != nil {
		return err
	}
	if strings.Trim(c.Render.Indent, " \t") != "" {
		return fmt.Errorf("%w: render.indent must contain only spaces and tabs", ErrInvalidValue)
	}

	if c.Batch.Workers < 0 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("%w: batch.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Batch.Workers)
	}

	if err := validateFieldLength("report.title", c.Report.Title, MaxTitleLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}

	return nil
}

// ValidAspectRatio reports whether v is a preserveAspectRatio value:
// "none" or an alignment such as "xMidYMid" optionally followed by
// "meet" or "slice".
func ValidAspectRatio(v string) bool {
	fields := strings.Fields(v)
	if len(fields) == 0 || len(fields) > 2 {
		return false
	}
	if len(fields) == 2 && fields[1] != "meet" && fields[1] != "slice" {
		return false
	}
	align := fields[0]
	if align == "none" {
		return len(fields) == 1
	}
	if len(align) != 8 || align[0] != 'x' || align[4] != 'Y' {
		return false
	}
	return validAxis(align[1:4]) && validAxis(align[5:8])
}

func validAxis(s string) bool {
	return s == "Min" || s == "Mid" || s == "Max"
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: printer defaults, automatic
// worker count, no report.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.FormatError(err, false))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-om2svg/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-om2svg", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
