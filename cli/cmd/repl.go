package cmd

import (
	"context"

	"github.com/ardnew/pcomb/cli/cmd/repl"
	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
)

// Repl starts an interactive session that parses each entered line with the
// key-value grammar.
type Repl struct {
	NoHistory bool `help:"Do not load or save input history"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var seed kv.Document

	// Source files are optional; stdin belongs to the terminal.
	if src := sourceFilesFrom(ctx); src != nil && src.Stdin() == nil {
		if seed, err = readDocument(ctx); err != nil {
			return err
		}
	}

	historyDir := ""

	if ktx := kongContextFrom(ctx); ktx != nil && !r.NoHistory {
		historyDir = ktx.Model.Vars()[CacheIdentifier]
	}

	return repl.Run(ctx, seed, historyDir, log.Default())
}
