package parse

// Cursor holds the input of a single parse and the index of the first
// unconsumed rune.
//
// Consumed input is never observed again except through [Cursor.Reset] to a
// [Mark] taken earlier in the same parse. A Cursor must be driven by only one
// parse at a time.
type Cursor struct {
	input []rune
	pos   int
}

// Mark is an opaque snapshot of a [Cursor] position.
type Mark int

// Position identifies a location in the input.
// Offset counts runes from the start of input; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: []rune(input)}
}

// Peek returns the leading unconsumed rune without consuming it.
// The second result is false when the cursor is exhausted.
func (c *Cursor) Peek() (rune, bool) {
	if c.Done() {
		return 0, false
	}

	return c.input[c.pos], true
}

// Advance drops the next n runes. Advancing past the end of input leaves the
// cursor exhausted; a negative n is ignored.
func (c *Cursor) Advance(n int) {
	if n <= 0 {
		return
	}

	c.pos = min(c.pos+n, len(c.input))
}

// Done reports whether all input has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.input) }

// Len returns the number of unconsumed runes.
func (c *Cursor) Len() int { return len(c.input) - c.pos }

// Offset returns the number of runes consumed so far.
func (c *Cursor) Offset() int { return c.pos }

// Rest returns the unconsumed input.
func (c *Cursor) Rest() string { return string(c.input[c.pos:]) }

// Mark returns a snapshot of the current position.
func (c *Cursor) Mark() Mark { return Mark(c.pos) }

// Reset moves the cursor back to a position saved with [Cursor.Mark].
func (c *Cursor) Reset(m Mark) {
	c.pos = max(0, min(int(m), len(c.input)))
}

// Position computes the line and column of the current offset.
// It scans the consumed input, so it is meant for diagnostics rather than the
// parsing hot path.
func (c *Cursor) Position() Position {
	pos := Position{Offset: c.pos, Line: 1, Column: 1}

	for _, r := range c.input[:c.pos] {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
