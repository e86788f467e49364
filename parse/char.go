package parse

import "unicode"

// Satisfy returns a primitive parser that consumes one rune if pred accepts
// it. On an exhausted cursor or a rejected rune it fails without consuming.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return Func[rune](func(c *Cursor) (rune, bool) {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			return 0, false
		}

		c.Advance(1)

		return r, true
	})
}

// AnyChar matches any single rune.
func AnyChar() Parser[rune] {
	return Satisfy(func(rune) bool { return true })
}

// Letter matches a single alphabetic rune.
func Letter() Parser[rune] {
	return Satisfy(unicode.IsLetter)
}

// Literal matches exactly the rune want.
func Literal(want rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == want })
}

// Whitespace matches a single space or horizontal tab.
// Line endings are not whitespace; grammars match them explicitly.
func Whitespace() Parser[rune] {
	return Satisfy(func(r rune) bool { return r == ' ' || r == '\t' })
}

// Digit matches a single Unicode decimal digit (category Nd) and produces
// its integer value, so '٣' and '７' yield 3 and 7.
func Digit() Parser[int] {
	return Func[int](func(c *Cursor) (int, bool) {
		r, ok := c.Peek()
		if !ok || !unicode.IsDigit(r) {
			return 0, false
		}

		c.Advance(1)

		return digitValue(r), true
	})
}

// digitValue returns the value of the decimal digit r. Nd digits come in
// contiguous runs of ten starting at zero, so the value is the distance to
// the start of the run modulo ten.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}

	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}

	return int(r-zero) % 10
}
