package kv

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/pcomb/parse"
)

// cache stores parsed documents keyed by the base-36 xxh3 hash of their
// source text.
var cache sync.Map

type entry struct {
	once sync.Once
	doc  Document
	err  error
}

// ParseDocument parses input as a complete document. Every rune of input must
// belong to a row; otherwise the returned error matches
// [parse.ErrIncomplete] and carries the position where parsing stopped.
func ParseDocument(
	ctx context.Context,
	input string,
	opts ...Option,
) (Document, error) {
	o := makeOptions(opts...)

	o.logger.TraceContext(
		ctx,
		"parse start",
		slog.Int("source_length", len(input)),
	)

	if !o.cache || o.tracing(ctx) {
		return parseDocument(ctx, input, o)
	}

	return parseDocumentCached(ctx, input, o)
}

// ParseReader reads all of r and parses it with [ParseDocument].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (Document, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, parse.ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseDocument(ctx, string(data), opts...)
}

// ClearCache removes all cached documents.
func ClearCache() {
	cache.Clear()
}

func parseDocument(
	ctx context.Context,
	input string,
	o options,
) (Document, error) {
	doc, err := parse.ParseAll(o.grammar(ctx), input)
	if err != nil {
		return nil, parse.WrapError(err).
			With(slog.Int("source_length", len(input)))
	}

	o.logger.TraceContext(ctx, "parse complete", slog.Int("entries", len(doc)))

	return doc, nil
}

func parseDocumentCached(
	ctx context.Context,
	input string,
	o options,
) (Document, error) {
	key := strconv.FormatUint(xxh3.HashString(input), 36)

	value, hit := cache.LoadOrStore(key, new(entry))
	e := value.(*entry)

	o.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", key),
		slog.Bool("cache_hit", hit),
	)

	e.once.Do(func() {
		e.doc, e.err = parseDocument(ctx, input, o)
	})

	// Callers may modify the result; the cached document is never exposed.
	return slices.Clone(e.doc), e.err
}
