//go:build pprof

package profile

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestModes(t *testing.T) {
	want := []string{
		"allocs", "block", "clock", "cpu", "goroutine",
		"heap", "mem", "mutex", "thread", "trace",
	}

	if got := Modes(); !slices.Equal(got, want) {
		t.Errorf("Modes() = %v, want %v", got, want)
	}
}

func TestProfiler_StartCPU(t *testing.T) {
	dir := t.TempDir()

	Make(WithMode("cpu"), WithPath(dir), WithQuiet(true)).Start().Stop()

	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("cpu profile not written: %v", err)
	}
}
