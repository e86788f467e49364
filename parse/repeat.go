package parse

// ZeroOrMore runs p repeatedly until it fails and collects every result in
// order. It always succeeds; if p fails on the first attempt the result is an
// empty, non-nil slice and nothing is consumed.
//
// The failing attempt of p must not consume input. If p can succeed without
// consuming input, ZeroOrMore does not terminate.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(c *Cursor) ([]T, bool) {
		return collect(p, c), true
	})
}

// OneOrMore is like [ZeroOrMore] but fails when p does not match at least
// once. Zero matches imply zero consumption, so failure leaves the cursor
// unchanged.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(c *Cursor) ([]T, bool) {
		matches := collect(p, c)
		if len(matches) == 0 {
			return nil, false
		}

		return matches, true
	})
}

func collect[T any](p Parser[T], c *Cursor) []T {
	matches := make([]T, 0)

	for {
		v, ok := p.Parse(c)
		if !ok {
			return matches
		}

		matches = append(matches, v)
	}
}
