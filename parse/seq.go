package parse

// Pair holds the results of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the results of three parsers run in sequence.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip runs a then b on the same cursor and succeeds with both results only if
// both succeed. If either fails, the cursor is reset to where it was before a
// ran, so partial consumption by a is never visible to the caller.
func Zip[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return Func[Pair[A, B]](func(c *Cursor) (Pair[A, B], bool) {
		mark := c.Mark()

		ra, ok := a.Parse(c)
		if !ok {
			c.Reset(mark)

			return Pair[A, B]{}, false
		}

		rb, ok := b.Parse(c)
		if !ok {
			c.Reset(mark)

			return Pair[A, B]{}, false
		}

		return Pair[A, B]{First: ra, Second: rb}, true
	})
}

// Zip3 runs a, b and c in sequence with the same all-or-nothing behavior as
// [Zip]. It is built by nesting two Zips and flattening the result.
func Zip3[A, B, C any](
	a Parser[A],
	b Parser[B],
	c Parser[C],
) Parser[Triple[A, B, C]] {
	return Map(
		Zip(Zip(a, b), c),
		func(p Pair[Pair[A, B], C]) Triple[A, B, C] {
			return Triple[A, B, C]{
				First:  p.First.First,
				Second: p.First.Second,
				Third:  p.Second,
			}
		},
	)
}

// Sequence runs each parser in order and collects their results. It fails,
// restoring the cursor, if any parser fails. With no parsers it succeeds with
// an empty slice without consuming.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	return Func[[]T](func(c *Cursor) ([]T, bool) {
		mark := c.Mark()
		out := make([]T, 0, len(ps))

		for _, p := range ps {
			v, ok := p.Parse(c)
			if !ok {
				c.Reset(mark)

				return nil, false
			}

			out = append(out, v)
		}

		return out, true
	})
}

// Backtrack makes p atomic: if p fails, the cursor is reset to where it was
// before p ran, regardless of what p consumed.
func Backtrack[T any](p Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) (T, bool) {
		mark := c.Mark()

		v, ok := p.Parse(c)
		if !ok {
			c.Reset(mark)

			var zero T

			return zero, false
		}

		return v, true
	})
}

// Left runs a then b atomically and keeps the result of a.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Zip(a, b), func(p Pair[A, B]) A { return p.First })
}

// Right runs a then b atomically and keeps the result of b.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Zip(a, b), func(p Pair[A, B]) B { return p.Second })
}
