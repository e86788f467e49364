// Package log provides a small structured logging interface based on
// [log/slog].
//
// A [Logger] is configured once at creation with functional options and is
// safe for concurrent use. The zero Logger discards everything, so library
// code can accept a Logger without requiring callers to supply one.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("document parsed", slog.Int("entries", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a new Logger from an existing one, overriding only the
// given options.
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. Trace sits below slog's Debug and is used for
// per-rule parser tracing.
//
// # Default Logger
//
// Package-level functions such as [Info] and [DebugContext] write to a
// process-wide default Logger, which [Config] reconfigures. Context-unaware
// functions pass [DefaultContextProvider]() to their context-aware
// counterparts.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled, text
// output is colorized using lipgloss styles.
package log
