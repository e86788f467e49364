package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/pcomb/cli"
	"github.com/ardnew/pcomb/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// slog resolves the error's LogValue.
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
