// Package cli contains the command line interface for pcomb.
//
// # Usage
//
//	pcomb [flags] <command> [args]
//
// Every command reads one document, the concatenation of the --source files
// ("-" for stdin, the default):
//
//	pcomb parse [native|json|yaml]   print the document
//	pcomb get KEY                    print the value of KEY
//	pcomb query EXPR                 evaluate an expr-lang expression
//	pcomb repl                       test lines interactively
//	pcomb bench [-n N]               measure parser throughput
//	pcomb init [--force]             write the configuration file
//
// # Configuration
//
// Flag defaults are read from the configuration directory (for example
// ~/.config/pcomb): the file "config" is written in the key-value grammar
// that pcomb parses, and "config.json" is read with kong's JSON loader.
// Command-line flags override both.
//
//	indent: 4
//	iterations: 5000
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error).
//     At trace level every grammar rule attempt is logged.
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o pcomb .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default ~/.cache/pcomb/pprof)
//
// # Examples
//
//	# Profile the parser
//	pcomb --source big.kv --pprof-mode=cpu bench -n 10000
//
//	# Watch the grammar at work
//	echo 'id: 16' | pcomb --log-level=trace --log-format=text parse json
package cli
