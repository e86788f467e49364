package cmd

import (
	"context"
	"log/slog"
)

// Parse reads a key-value document and prints it in the chosen format.
type Parse struct {
	Native Native `cmd:"" default:"withargs" help:"Print as native key-value syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Print as JSON."`
	YAML   YAML   `cmd:""                    help:"Print as YAML."`
}

// Native prints the document in native syntax.
type Native struct{}

// Run executes the parse native command.
func (n *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}

	return formatted("native", doc.Format(ctx, outputFrom(ctx)))
}

// JSON prints the document as a JSON object.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" short:"i"`
}

// Run executes the parse json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}

	return formatted("json", doc.FormatJSON(ctx, outputFrom(ctx), j.Indent))
}

// YAML prints the document as a YAML mapping.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`
}

// Run executes the parse yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}

	return formatted("yaml", doc.FormatYAML(ctx, outputFrom(ctx), y.Indent))
}

func formatted(format string, err error) error {
	if err != nil {
		return ErrFormat.Wrap(err).With(slog.String("format", format))
	}

	return nil
}
