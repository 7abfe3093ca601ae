package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds printer option flags.
type renderFlags struct {
	preserveAspectRatio string
	dpi                 float64
	indent              string
	compact             bool
}

// outputFlags holds extra output flags.
type outputFlags struct {
	report bool   // HTML report next to each SVG
	color  bool   // highlighted SVG on stdout
	style  string // chroma style for report and terminal
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	render  renderFlags
	extra   outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings, diagnostics and debug logs")
}

// addRenderFlags adds printer flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.preserveAspectRatio, "preserve-aspect-ratio", "", "root preserveAspectRatio (default \"none\")")
	fs.Float64Var(&f.dpi, "dpi", 0, "resolution for pt and mm lengths (default 72)")
	fs.StringVar(&f.indent, "indent", "", "indentation unit (default two spaces)")
	fs.BoolVar(&f.compact, "compact", false, "no indentation or line breaks")
}

// addOutputFlags adds report and terminal output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.report, "report", false, "write an HTML report next to each SVG")
	fs.BoolVar(&f.color, "color", false, "print highlighted SVG to stdout")
	fs.StringVar(&f.style, "style", "", "highlight style for --report and --color")
}

// newConvertFlagSet registers every convert flag on a new FlagSet.
func newConvertFlagSet(f *convertFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addOutputFlags(fs, &f.extra)

	fs.Usage = func() { printConvertUsage(usage) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f, usage)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
