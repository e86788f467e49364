package parse

import (
	"log/slog"

	"github.com/ardnew/pcomb/log"
)

// Traced wraps p so that every attempt is logged at trace level under the
// given rule name, with the position where the attempt started and, on
// success, where it ended. The result and cursor behavior are those of p.
//
// When trace logging is disabled the only overhead is the level check.
func Traced[T any](name string, p Parser[T], logger log.Logger) Parser[T] {
	return Func[T](func(c *Cursor) (T, bool) {
		ctx := log.DefaultContextProvider()
		if !logger.Enabled(ctx, slog.Level(log.LevelTrace)) {
			return p.Parse(c)
		}

		start := c.Offset()
		v, ok := p.Parse(c)

		if ok {
			logger.TraceContext(ctx, "match",
				slog.String("rule", name),
				slog.Int("start", start),
				slog.Int("end", c.Offset()),
			)
		} else {
			pos := c.Position()
			logger.TraceContext(ctx, "no match",
				slog.String("rule", name),
				slog.Int("start", start),
				slog.Int("line", pos.Line),
				slog.Int("column", pos.Column),
			)
		}

		return v, ok
	})
}
