package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-om2svg/internal/config"
)

// envPrefix namespaces the environment variables read by the CLI.
const envPrefix = "OM2SVG_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string  // OM2SVG_CONFIG: config file name or path
	InputDir   string  // OM2SVG_INPUT_DIR: default input directory
	OutputDir  string  // OM2SVG_OUTPUT_DIR: default output directory
	Workers    int     // OM2SVG_WORKERS: parallel workers
	DPI        float64 // OM2SVG_DPI: resolution for pt and mm lengths
	LogLevel   string  // OM2SVG_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid OM2SVG_* environment variables.
var knownEnvVars = map[string]bool{
	"OM2SVG_CONFIG":     true,
	"OM2SVG_INPUT_DIR":  true,
	"OM2SVG_OUTPUT_DIR": true,
	"OM2SVG_WORKERS":    true,
	"OM2SVG_DPI":        true,
	"OM2SVG_LOG_LEVEL":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("OM2SVG_CONFIG"),
		InputDir:   getenv("OM2SVG_INPUT_DIR"),
		OutputDir:  getenv("OM2SVG_OUTPUT_DIR"),
		LogLevel:   getenv("OM2SVG_LOG_LEVEL"),
	}

	if workers := getenv("OM2SVG_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	if dpi := getenv("OM2SVG_DPI"); dpi != "" {
		if d, err := strconv.ParseFloat(dpi, 64); err == nil && d > 0 {
			cfg.DPI = d
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized OM2SVG_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = env.Workers
	}
	if env.DPI > 0 && cfg.Render.DPI == 0 {
		cfg.Render.DPI = env.DPI
	}
	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
}
