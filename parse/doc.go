// Package parse provides composable parser combinators over text.
//
// A [Parser] is any value with a single method that attempts to consume a
// prefix of a [Cursor] and produce a typed result. Larger parsers are built
// once, ahead of time, by combining primitive character tests with
// combinators; the resulting parser graph is immutable and can be invoked any
// number of times on different inputs.
//
// # Basic Usage
//
//	key := parse.Map(
//		parse.OneOrMore(parse.Letter()),
//		func(rs []rune) string { return string(rs) },
//	)
//
//	name, ok := parse.Invoke(key, "targetHeight: 100")
//	// name == "targetHeight", ok == true
//
// # Failure
//
// There is exactly one failure outcome, no-match, reported as the second
// return value being false. Failure is ordinary control flow: sequencing
// restores the cursor, repetition stops collecting, and [Always] ignores it.
// Only the top-level helper [ParseAll] translates failure into an [Error]
// carrying the cursor position.
//
// # Consumption Contract
//
// Every primitive either consumes exactly one rune and succeeds, or consumes
// nothing and fails. [Zip], [Zip3], [Sequence] and [Backtrack] extend that
// guarantee to composed parsers by resetting the cursor to the mark taken
// before the attempt. Repetition relies on it: a parser used inside
// [ZeroOrMore] or [OneOrMore] must not consume input when it fails, and must
// consume input when it succeeds, or the repetition never terminates.
//
// [Always] does not roll back a failing parser's partial consumption. Use
// [Optional] when the wrapped parser is composed and not already atomic.
//
// # Concurrency
//
// Parsers hold no per-invocation state. A single parser may be shared by any
// number of goroutines as long as each drives its own [Cursor].
package parse
