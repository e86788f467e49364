package parse

import "log/slog"

// Parser attempts to consume a prefix of a [Cursor] and produce a T.
//
// On success Parse returns the result and true, with the cursor advanced past
// exactly the consumed prefix. On failure it returns the zero T and false.
// Primitives never consume on failure; see the package documentation for the
// guarantees of each combinator.
type Parser[T any] interface {
	Parse(c *Cursor) (T, bool)
}

// Func adapts an ordinary function to the [Parser] interface.
type Func[T any] func(c *Cursor) (T, bool)

// Parse calls f(c).
func (f Func[T]) Parse(c *Cursor) (T, bool) { return f(c) }

// Result is the outcome of running a parser on a complete input with [Exec].
type Result[T any] struct {
	Value T
	Ok    bool
	Rest  string   // unconsumed input
	End   Position // position of the cursor after the attempt
}

// Invoke runs p on a fresh cursor over input and returns its result.
func Invoke[T any](p Parser[T], input string) (T, bool) {
	return p.Parse(NewCursor(input))
}

// Exec runs p on a fresh cursor over input and reports the result together
// with the unconsumed remainder.
func Exec[T any](p Parser[T], input string) Result[T] {
	c := NewCursor(input)
	v, ok := p.Parse(c)

	return Result[T]{
		Value: v,
		Ok:    ok,
		Rest:  c.Rest(),
		End:   c.Position(),
	}
}

// ParseAll runs p on input and requires that it consume all of it.
//
// It returns [ErrNoMatch] if p fails and [ErrIncomplete] if p succeeds but
// leaves input unconsumed. Both errors carry the position where parsing
// stopped.
func ParseAll[T any](p Parser[T], input string) (T, error) {
	var zero T

	c := NewCursor(input)

	v, ok := p.Parse(c)
	if !ok {
		return zero, ErrNoMatch.WithPosition(c.Position())
	}

	if !c.Done() {
		return zero, ErrIncomplete.WithPosition(c.Position()).
			With(slog.String("rest", preview(c.Rest())))
	}

	return v, nil
}

const previewLen = 24

// preview truncates s for inclusion in error attributes.
func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}

	return string(r[:previewLen]) + "…"
}
