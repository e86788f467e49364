package kv

import (
	"strconv"

	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/parse"
)

// KeyValue is a single entry of a document.
type KeyValue struct {
	Key   string
	Value int
}

// String formats kv in the native "key: value" syntax.
func (kv KeyValue) String() string {
	return kv.Key + ": " + strconv.Itoa(kv.Value)
}

// Grammar rules.
var (
	// Key matches one or more letters.
	Key = parse.Map(parse.OneOrMore(parse.Letter()), runesToString)

	// Separator matches a colon with optional spaces or tabs on either side.
	Separator = parse.Discard(parse.Zip3(blank, parse.Literal(':'), blank))

	// Value matches one or more decimal digits.
	Value = parse.Map(parse.OneOrMore(parse.Digit()), DigitsToInt)

	// Line matches a single entry without its line ending.
	Line = lineOf(Key, Separator, Value)

	// Row matches a [Line] followed by an optional newline.
	Row = rowOf(Line)

	// Config matches any number of rows.
	Config = configOf(Row)
)

var blank = parse.ZeroOrMore(parse.Whitespace())

// DigitsToInt folds decimal digits, most significant first, into an int.
// The result wraps on overflow like any Go int arithmetic.
func DigitsToInt(digits []int) int {
	n := 0
	for _, d := range digits {
		n = n*10 + d
	}

	return n
}

func runesToString(rs []rune) string { return string(rs) }

func lineOf(
	key parse.Parser[string],
	sep parse.Parser[parse.Unit],
	value parse.Parser[int],
) parse.Parser[KeyValue] {
	return parse.Map(
		parse.Zip3(key, sep, value),
		func(t parse.Triple[string, parse.Unit, int]) KeyValue {
			return KeyValue{Key: t.First, Value: t.Third}
		},
	)
}

func rowOf(line parse.Parser[KeyValue]) parse.Parser[KeyValue] {
	return parse.Left(line, parse.Always(parse.Literal('\n')))
}

func configOf(row parse.Parser[KeyValue]) parse.Parser[Document] {
	return parse.Map(
		parse.ZeroOrMore(row),
		func(rows []KeyValue) Document { return Document(rows) },
	)
}

// tracedConfig builds the same grammar as [Config] with every rule wrapped
// by [parse.Traced].
func tracedConfig(logger log.Logger) parse.Parser[Document] {
	key := parse.Traced("key", Key, logger)
	sep := parse.Traced("separator", Separator, logger)
	value := parse.Traced("value", Value, logger)
	line := parse.Traced("line", lineOf(key, sep, value), logger)

	return parse.Traced("config", configOf(rowOf(line)), logger)
}

// ParseLine parses one entry from the start of s. Input after the entry is
// ignored.
func ParseLine(s string) (KeyValue, bool) {
	return parse.Invoke(Line, s)
}
