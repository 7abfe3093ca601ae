package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"

	om2svg "github.com/alnah/go-om2svg"
	"github.com/alnah/go-om2svg/internal/config"
	"github.com/alnah/go-om2svg/internal/fileutil"
	"github.com/alnah/go-om2svg/internal/hints"
	"github.com/alnah/go-om2svg/internal/report"
)

// runConvertCmd parses flags, runs the conversion and maps the outcome to
// an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		if !errors.Is(err, ErrBatchFailed) {
			fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		} else if h := hintFor(err); h != "" {
			fmt.Fprintln(env.Stderr, strings.TrimPrefix(h, "\n"))
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, om2svg.ErrPartialOutput):
		return hints.ForPartialOutput()
	case errors.Is(err, config.ErrConfigNotFound):
		dir, _ := os.UserConfigDir()
		return hints.ForConfigNotFound(dir)
	case errors.Is(err, report.ErrUnknownStyle):
		return hints.ForStyleNotFound(styles.Names())
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForDocumentExtension(fileutil.DocumentExtensions)
	case errors.Is(err, om2svg.ErrInvalidDocument):
		return hints.ForInvalidDocument()
	case errors.Is(err, ErrWriteSVG), errors.Is(err, ErrWriteReport):
		return hints.ForOutputDirectory()
	}
	return ""
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	// Load configuration: flag > OM2SVG_CONFIG > defaults
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no documents found in %s", ErrNoInput, inputPath)
	}

	workers := resolvePoolSize(cfg.Batch.Workers)
	params := &batchParams{
		workers:  workers,
		keepSVG:  flags.extra.color,
		reportOf: reportPath,
	}
	if cfg.Report.Enabled {
		// Fail on a bad style before any document is printed.
		if _, err := report.NewGenerator(cfg.Report.Style); err != nil {
			return err
		}
		params.reports = NewGeneratorPool(workers, cfg.Report.Style)
	}

	log := newLogger(env.Stderr, cfg.Log.Level)
	log.Debug("batch starting", "files", len(files), "workers", workers)

	conv := om2svg.NewConverter(converterOptions(cfg, log)...)
	results := convertBatch(ctx, conv, files, params)

	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)

	if flags.extra.color {
		for _, r := range results {
			if len(r.SVG) == 0 {
				continue
			}
			if err := printHighlighted(env.Stdout, r.SVG, cfg.Report.Style); err != nil {
				return fmt.Errorf("highlighting %s: %w", r.InputPath, err)
			}
		}
	}

	return batchError(results)
}

// mergeFlags applies CLI flag values to config (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.workers > 0 {
		cfg.Batch.Workers = flags.workers
	}

	if flags.render.preserveAspectRatio != "" {
		cfg.Render.PreserveAspectRatio = flags.render.preserveAspectRatio
	}
	if flags.render.dpi > 0 {
		cfg.Render.DPI = flags.render.dpi
	}
	if flags.render.indent != "" {
		cfg.Render.Indent = flags.render.indent
	}
	if flags.render.compact {
		cfg.Render.Compact = true
	}

	if flags.extra.report {
		cfg.Report.Enabled = true
	}
	if flags.extra.style != "" {
		cfg.Report.Style = flags.extra.style
	}

	if flags.common.verbose {
		cfg.Log.Level = "debug"
	}
}

// resolveInputPath returns the positional input or the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// converterOptions maps the merged config onto converter options.
func converterOptions(cfg *config.Config, log *slog.Logger) []om2svg.Option {
	opts := []om2svg.Option{
		om2svg.WithPreserveAspectRatio(cfg.Render.PreserveAspectRatio),
		om2svg.WithIndent(cfg.Render.Indent),
		om2svg.WithCompact(cfg.Render.Compact),
		om2svg.WithLogger(log),
	}
	if cfg.Render.DPI > 0 {
		opts = append(opts, om2svg.WithDPI(cfg.Render.DPI))
	}
	return opts
}

// newLogger returns a text logger on w at the given level; an empty level
// disables logging.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "":
		return slog.New(slog.DiscardHandler)
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	default:
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
