// Package cli contains the command line interface for typeset.
//
// # Usage
//
// Render a layout expression from stdin:
//
//	echo '"key" + nest "value"' | typeset render
//
// Render from a file, binding positional arguments to index atoms:
//
//	typeset render -f layout.ts '"head"' '"body"'
//
// Format an expression as canonical syntax, JSON, YAML, or a node tree:
//
//	echo 'grp (0 & 1)' | typeset fmt yaml
//
// Start an interactive session:
//
//	typeset repl
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Configuration
//
// Defaults for any flag may be placed in a YAML config file at
// ~/.config/typeset/config.yaml, keyed by flag name:
//
//	log-level: debug
//	width: 100
//
// Command-line flags override config file values.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/typeset/pprof)
package cli
