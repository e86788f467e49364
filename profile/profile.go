package profile

import "slices"

// Profiler describes a profiling session.
type Profiler struct {
	Mode  string // one of [Modes]; empty disables profiling
	Path  string // output directory; empty uses the working directory
	Quiet bool   // suppress the start and stop messages
}

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Option modifies a [Profiler].
type Option func(Profiler) Profiler

// Make returns a [Profiler] with opts applied in order.
func Make(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		if opt != nil {
			p = opt(p)
		}
	}

	return p
}

// WithMode sets the profiling mode.
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet suppresses the messages printed when profiling starts and stops.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

// Start begins profiling and returns the handle that stops it.
//
// If the binary was built without the pprof tag, or p.Mode is empty or not
// one of [Modes], Start does nothing. Both Start and Stop are always safely
// callable.
func (p Profiler) Start() Stopper {
	if !ValidMode(p.Mode) {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

// ValidMode reports whether mode names a supported profiling mode.
func ValidMode(mode string) bool {
	return mode != "" && slices.Contains(Modes(), mode)
}

type ignore struct{}

func (ignore) Stop() {}
