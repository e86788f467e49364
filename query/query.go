// Package query evaluates expr-lang expressions against key-value documents.
//
// Every key of the document is visible to the expression as an integer
// variable holding its effective value:
//
//	doc, _ := kv.ParseDocument(ctx, "targetHeight: 100\nmaxTemperature: 80")
//	ok, _ := query.Eval(ctx, "targetHeight > maxTemperature", doc)
//	// ok == true
//
// Two functions are added to the expr-lang builtins: keys() returns the
// document keys in order of first appearance, and lookup(name) returns the
// value of a key or nil when it is missing.
package query

import (
	"context"
	"iter"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/builtin"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/parse"
)

// Predefined errors (sentinel values).
var (
	ErrCompile  = parse.NewError("expression compilation failed")
	ErrEvaluate = parse.NewError("expression evaluation failed")
)

// Option configures compilation and evaluation.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the structured logger for trace-level debugging.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Program is a compiled expression bound to the set of keys of the document
// it was compiled against.
type Program struct {
	source  string
	program *vm.Program
	logger  log.Logger
}

// Compile compiles source for evaluation against documents with the same
// keys as doc. Referring to an unknown key is a compile error.
func Compile(source string, doc kv.Document, opts ...Option) (*Program, error) {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	program, err := expr.Compile(source, expr.Env(env(doc)))
	if err != nil {
		return nil, ErrCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return &Program{source: source, program: program, logger: o.logger}, nil
}

// Source returns the expression text.
func (p *Program) Source() string { return p.source }

// Run evaluates p with the values of doc.
func (p *Program) Run(ctx context.Context, doc kv.Document) (any, error) {
	p.logger.TraceContext(
		ctx,
		"query run",
		slog.String("source", p.source),
		slog.Int("entries", len(doc)),
	)

	result, err := expr.Run(p.program, env(doc))
	if err != nil {
		return nil, ErrEvaluate.Wrap(err).
			With(slog.String("source", p.source))
	}

	return result, nil
}

// Eval compiles and runs source against doc.
func Eval(
	ctx context.Context,
	source string,
	doc kv.Document,
	opts ...Option,
) (any, error) {
	p, err := Compile(source, doc, opts...)
	if err != nil {
		return nil, err
	}

	return p.Run(ctx, doc)
}

// Builtins returns an iterator over the names of all functions available to
// expressions.
func Builtins() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range []string{"keys", "lookup"} {
			if !yield(name) {
				return
			}
		}

		for _, fn := range builtin.Builtins {
			if !yield(fn.Name) {
				return
			}
		}
	}
}

// env maps every key of doc to its value and adds the keys and lookup
// functions unless doc defines keys with those names.
func env(doc kv.Document) map[string]any {
	m := doc.ToMap()

	if _, ok := m["keys"]; !ok {
		m["keys"] = doc.Keys
	}

	if _, ok := m["lookup"]; !ok {
		m["lookup"] = func(name string) any {
			if v, ok := doc.Lookup(name); ok {
				return v
			}

			return nil
		}
	}

	return m
}
