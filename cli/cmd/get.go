package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions limits the keys reported when a lookup misses.
const maxSuggestions = 3

// Get prints the value of a single key.
type Get struct {
	Key string `arg:"" help:"Key to look up" name:"key"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}

	v, err := doc.Get(g.Key)
	if err != nil {
		e := ErrLookup.Wrap(err)

		if s := suggest(g.Key, doc.Keys()); len(s) > 0 {
			e = e.With(slog.Any("suggestions", s))
		}

		return e
	}

	_, err = fmt.Fprintln(outputFrom(ctx), v)

	return err
}

// suggest returns up to maxSuggestions keys that fuzzy-match key, best first.
func suggest(key string, keys []string) []string {
	matches := fuzzy.Find(key, keys)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}
