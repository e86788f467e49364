package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
)

// Init generates a default configuration file with current flag values.
//
// The file is written in the key-value grammar, so only integer flags whose
// names consist of letters are recorded.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	doc := i.buildDocument(ctx)

	err = writeDocument(ctx, file, doc)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
		slog.Int("entries", len(doc)),
	)

	return nil
}

// writeDocument formats doc to w and closes it. A failed close is reported
// when formatting succeeded, since the written data may not have reached
// the file.
func writeDocument(ctx context.Context, w io.WriteCloser, doc kv.Document) error {
	err := doc.Format(ctx, w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}

	return err
}

// buildDocument collects the integer flags of every command, in model order,
// with their current values. A flag name shared by several commands is
// recorded once.
func (i *Init) buildDocument(ctx context.Context) kv.Document {
	ktx := kongContextFrom(ctx)

	var doc kv.Document

	seen := map[string]bool{}

	for _, flag := range allFlags(ktx.Model.Node) {
		if flag.Hidden || seen[flag.Name] || !isKey(flag.Name) {
			continue
		}

		n, ok := ktx.FlagValue(flag).(int)
		if !ok || n < 0 {
			continue
		}

		seen[flag.Name] = true
		doc = append(doc, kv.KeyValue{Key: flag.Name, Value: n})
	}

	return doc
}

// allFlags returns the flags of node and all of its descendants, depth first.
func allFlags(node *kong.Node) []*kong.Flag {
	flags := slices.Clone(node.Flags)

	for _, child := range node.Children {
		flags = append(flags, allFlags(child)...)
	}

	return flags
}

// isKey reports whether name is valid as a key in the key-value grammar.
func isKey(name string) bool {
	return name != "" && strings.IndexFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) < 0
}
