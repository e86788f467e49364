// Package kv implements a line-oriented key-value grammar with the parser
// combinators of package parse.
//
// A document is a sequence of rows. Each row is a key made of one or more
// letters, a colon optionally surrounded by spaces or tabs, and a value made
// of one or more decimal digits, followed by an optional newline:
//
//	targetHeight: 100
//	maxTemperature: 80
//	id : 16
//
// The grammar rules are exported as parsers ([Key], [Separator], [Value],
// [Line], [Row] and [Config]) so they can be reused or composed further. The
// helpers [ParseLine], [ParseDocument] and [ParseReader] cover the common
// cases.
//
// Parsed documents are cached by a hash of their source text. The cache is
// shared by all goroutines; see [WithCache] and [ClearCache].
package kv
