package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type outputKey struct{}

// WithOutput returns a new context.Context whose commands write results to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom returns the writer stored by [WithOutput], or os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

type (
	sourceFilesKey struct{}
	sourceFiles    struct {
		read     []io.Reader
		hasStdin bool
		stdin    io.Reader
		multi    io.Reader
		closed   bool
	}

	// SourceFiles reads the document sources named by --source as one stream:
	// each regular file in order, then stdin if it was named.
	// Close releases the opened files; it never closes stdin.
	SourceFiles interface {
		IsZero() bool
		Stdin() io.Reader
		io.ReadCloser
	}
)

// IsZero reports whether there are no source files.
func (s *sourceFiles) IsZero() bool { return len(s.read) == 0 && !s.hasStdin }

// Stdin returns the standard input reader if stdin was included as a source,
// or nil otherwise.
func (s *sourceFiles) Stdin() io.Reader {
	if s.hasStdin {
		return s.stdin
	}

	return nil
}

// Read implements io.Reader by reading from all source files in order,
// followed by stdin if present.
func (s *sourceFiles) Read(p []byte) (n int, err error) {
	if s.multi == nil {
		readers := make([]io.Reader, 0, len(s.read)+1)
		readers = append(readers, s.read...)

		if s.hasStdin {
			readers = append(readers, s.stdin)
		}

		s.multi = io.MultiReader(readers...)
	}

	return s.multi.Read(p)
}

// Close closes every opened source file. Stdin is left open.
func (s *sourceFiles) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	var errs []error

	for _, r := range s.read {
		if c, ok := r.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}

	return errors.Join(errs...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context containing an [io.Reader] that
// reads from the given source files.
//
// The function deduplicates readers by resolving symlinks and comparing device/
// inode pairs. All occurrences of "-" are replaced with a single stdin reader.
// The stdin reader is placed last so it reads after all regular files.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(
		ctx,
		sourceFilesKey{},
		buildSourceFiles(sources, os.Stdin),
	)
}

// buildSourceFiles constructs a SourceFiles from the given source paths.
func buildSourceFiles(sources []string, stdin *os.File) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	srcs.read = make([]io.Reader, 0, len(sources))
	srcs.stdin = stdin
	seen := make(map[fileKey]struct{})

	var (
		stdinKey fileKey
		stdinOK  bool
	)

	if info, err := stdin.Stat(); err == nil {
		stdinKey, stdinOK = makeFileKey(info)
	}

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		if key, ok := statFileKey(src); ok && stdinOK && key == stdinKey {
			seen[stdinKey] = struct{}{}

			continue
		}

		reader, ok := openUniqueFile(src, seen)
		if !ok {
			log.Warn("skipping source", slog.String("path", src))

			continue
		}

		srcs.read = append(srcs.read, reader)
	}

	// Stdin may have been included via "-" or by naming its file.
	// Either way it is represented by stdinKey in seen.
	_, srcs.hasStdin = seen[stdinKey]
	delete(seen, stdinKey)

	if srcs.IsZero() {
		return nil
	}

	return &srcs
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
// Returns the opened file and true if successful, or nil and false if the file
// is a duplicate or cannot be opened.
func openUniqueFile(path string, seen map[fileKey]struct{}) (io.Reader, bool) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, false
	}

	key, ok := statFileKey(resolved)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

// resolvePath returns the absolute path of path with symlinks evaluated.
func resolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(absPath)
}

// statFileKey returns the fileKey of the file at path, following symlinks.
func statFileKey(path string) (fileKey, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// sourceFilesFrom retrieves the io.Reader stored in ctx by WithSourceFiles.
// Returns nil if no reader was stored.
func sourceFilesFrom(ctx context.Context) SourceFiles {
	r, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return r
}

// closeSources closes src, logging any failure.
func closeSources(ctx context.Context, src SourceFiles) {
	if err := src.Close(); err != nil {
		log.WarnContext(ctx, "closing sources", slog.Any("error", err))
	}
}

// readDocument parses the concatenated source files stored in ctx.
func readDocument(ctx context.Context, opts ...kv.Option) (kv.Document, error) {
	src := sourceFilesFrom(ctx)
	if src == nil {
		return nil, ErrNoSource
	}

	defer closeSources(ctx, src)

	opts = append([]kv.Option{kv.WithLogger(log.Default())}, opts...)

	doc, err := kv.ParseReader(ctx, src, opts...)
	if err != nil {
		return nil, ErrReadSource.Wrap(err)
	}

	log.DebugContext(ctx, "document parsed", slog.Int("entries", len(doc)))

	return doc, nil
}
