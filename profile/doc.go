// Package profile provides optional runtime profiling for pcomb.
//
// Profiling is built on [github.com/pkg/profile] and must be enabled at build
// time with the "pprof" build tag:
//
//	go build -tags pprof ./...
//
// Without the tag every operation is a no-op, [Modes] is empty and [Enabled]
// is false.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking on synchronization primitives
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine stacks
//   - heap:      live heap allocations
//   - mem:       general memory profiling
//   - mutex:     mutex contention
//   - thread:    thread creation
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/profiles"),
//	)
//	defer p.Start().Stop()
//
// Profile files are named after the mode (cpu.pprof, mem.pprof) and can be
// inspected with go tool pprof. The bench command of pcomb is the intended
// driver:
//
//	pcomb --pprof-mode cpu bench --iterations 100000 -s config.kv
//	go tool pprof -http=: "$XDG_CACHE_HOME/pcomb/pprof/cpu.pprof"
//
// Built with the tag, the package also registers the [net/http/pprof]
// handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
