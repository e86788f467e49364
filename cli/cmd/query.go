package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/query"
)

// Query evaluates an expression with the document keys as variables.
type Query struct {
	Expr string `arg:"" help:"expr-lang expression, e.g. 'targetHeight > maxTemperature'" name:"expr"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}

	result, err := query.Eval(ctx, q.Expr, doc, query.WithLogger(log.Default()))
	if err != nil {
		return ErrQuery.Wrap(err).With(slog.String("expr", q.Expr))
	}

	_, err = fmt.Fprintln(outputFrom(ctx), result)

	return err
}
