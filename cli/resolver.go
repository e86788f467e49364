package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
)

// resolve returns a [kong.ConfigurationLoader] for config files written in
// the key-value grammar that pcomb itself parses:
//
//	indent: 4
//	iterations: 5000
//
// Keys are matched against flag names case-insensitively with hyphens
// removed, so "tabSize" configures --tab-size. When a key appears more than
// once the last entry wins. Command-line flags override config file values.
//
// A config file that does not parse is reported and otherwise ignored.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		doc, err := kv.ParseReader(ctx, r)
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		cfg := make(config, len(doc))
		for key, value := range doc.All() {
			cfg[configKey(key)] = value
		}

		log.TraceContext(ctx, "configuration loaded",
			slog.Int("entries", len(cfg)),
		)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over a parsed key-value document.
type config map[string]int

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := c[configKey(flag.Name)]
	if !ok {
		return nil, nil //nolint:nilnil
	}

	// Kong parses resolved values from their string form.
	return strconv.Itoa(value), nil
}

// configKey normalizes a flag name or document key for matching.
func configKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", ""))
}
