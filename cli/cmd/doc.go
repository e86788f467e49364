// Package cmd implements the pcomb subcommands: parse, get, query, repl,
// bench and init.
//
// Every command reads its input document from the source files stored in
// the context by [WithSourceFiles] and writes results to the writer stored
// by [WithOutput] (standard output by default).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the key-value configuration file.
	ConfigIdentifier = "config"
)
