package parse

// Unit is the result of parsers whose value carries no information.
type Unit struct{}

// Option is the result of [Optional]. Ok reports whether the wrapped parser
// matched; Value is its result when it did.
type Option[T any] struct {
	Value T
	Ok    bool
}

// Map transforms the result of p with fn. The cursor is advanced exactly as p
// advances it. If p fails, fn is not called and the failure propagates.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return Func[B](func(c *Cursor) (B, bool) {
		v, ok := p.Parse(c)
		if !ok {
			var zero B

			return zero, false
		}

		return fn(v), true
	})
}

// Always runs p, ignores whether it matched, and succeeds with [Unit].
//
// Always does not roll back input consumed by a failing p. That is safe when
// p is a primitive or is itself atomic (as [Zip], [Sequence] and [Backtrack]
// are). Wrap other composed parsers with [Optional] instead.
func Always[T any](p Parser[T]) Parser[Unit] {
	return Func[Unit](func(c *Cursor) (Unit, bool) {
		_, _ = p.Parse(c)

		return Unit{}, true
	})
}

// Optional runs p inside a backtracking boundary and always succeeds. The
// result reports whether p matched; if it did not, the cursor is unchanged.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	bp := Backtrack(p)

	return Func[Option[T]](func(c *Cursor) (Option[T], bool) {
		v, ok := bp.Parse(c)

		return Option[T]{Value: v, Ok: ok}, true
	})
}

// Discard maps any successful result of p to [Unit].
func Discard[T any](p Parser[T]) Parser[Unit] {
	return Map(p, func(T) Unit { return Unit{} })
}
