package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: om2svg <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Print document models (YAML or JSON) as SVG")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'om2svg help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: om2svg convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print document models as SVG.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .yaml, .yml or .json file, or a directory of them")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>              Output .svg file or directory")
	fmt.Fprintln(w, "  -c, --config <name>              Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>                Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --preserve-aspect-ratio <s>  Root preserveAspectRatio (default \"none\")")
	fmt.Fprintln(w, "      --dpi <n>                    Resolution for pt and mm lengths (default 72)")
	fmt.Fprintln(w, "      --indent <s>                 Indentation unit (default two spaces)")
	fmt.Fprintln(w, "      --compact                    No indentation or line breaks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extra output:")
	fmt.Fprintln(w, "      --report                     Write an HTML report next to each SVG")
	fmt.Fprintln(w, "      --color                      Print highlighted SVG to stdout")
	fmt.Fprintln(w, "      --style <name>               Highlight style (default \"github\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet                      Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                    Show timings, diagnostics and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  OM2SVG_CONFIG, OM2SVG_INPUT_DIR, OM2SVG_OUTPUT_DIR,")
	fmt.Fprintln(w, "  OM2SVG_WORKERS, OM2SVG_DPI, OM2SVG_LOG_LEVEL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage error, 3 I/O error,")
	fmt.Fprintln(w, "  5 printing aborted (partial SVG written)")
}
