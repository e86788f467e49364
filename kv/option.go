package kv

import (
	"context"
	"log/slog"

	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/parse"
)

// Option configures document parsing.
type Option func(*options)

type options struct {
	logger log.Logger
	cache  bool
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
// When trace logging is enabled every grammar rule attempt is logged and the
// document cache is bypassed.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCache enables or disables the shared document cache. It is enabled by
// default.
func WithCache(enable bool) Option {
	return func(o *options) {
		o.cache = enable
	}
}

func makeOptions(opts ...Option) options {
	o := options{cache: true}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o options) tracing(ctx context.Context) bool {
	return o.logger.Enabled(ctx, slog.Level(log.LevelTrace))
}

func (o options) grammar(ctx context.Context) parse.Parser[Document] {
	if o.tracing(ctx) {
		return tracedConfig(o.logger)
	}

	return Config
}
