package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/pcomb/cli/cmd"
	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
)

// TestRun drives the whole CLI. The configuration and cache directories are
// resolved once per process, so every step shares one environment.
func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	source := filepath.Join(home, "doc.kv")
	if err := os.WriteFile(source, []byte("id: 16\ntargetHeight: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	run := func(t *testing.T, args ...string) string {
		t.Helper()

		var out bytes.Buffer

		ctx := cmd.WithOutput(context.Background(), &out)

		exit := func(code int) { t.Fatalf("exit(%d) called for %q", code, args) }

		if err := Run(ctx, exit, args...); err != nil {
			t.Fatalf("Run(%q) error = %v", args, err)
		}

		return out.String()
	}

	t.Run("get", func(t *testing.T) {
		if got := run(t, "--source", source, "get", "targetHeight"); got != "45\n" {
			t.Errorf("output = %q, want %q", got, "45\n")
		}
	})

	t.Run("parse default", func(t *testing.T) {
		if got := run(t, "-s", source, "parse"); got != "id: 16\ntargetHeight: 45\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("init", func(t *testing.T) {
		run(t, "init", "--force")

		content, err := os.ReadFile(configPath(baseConfig))
		if err != nil {
			t.Fatal(err)
		}

		doc, err := kv.ParseDocument(context.Background(), string(content))
		if err != nil {
			t.Fatalf("config does not parse: %v", err)
		}

		if v, ok := doc.Lookup("iterations"); !ok || v != 1000 {
			t.Errorf("iterations = %d, %v, want 1000", v, ok)
		}
	})

	t.Run("config applies", func(t *testing.T) {
		err := os.WriteFile(configPath(baseConfig), []byte("iterations: 3\n"), 0o644)
		if err != nil {
			t.Fatal(err)
		}

		got := run(t, "--log-level=error", "-s", source, "bench")
		if !strings.HasPrefix(got, "3 iterations,") {
			t.Errorf("output = %q, want 3 iterations from config", got)
		}

		got = run(t, "--log-level=error", "-s", source, "bench", "-n", "2")
		if !strings.HasPrefix(got, "2 iterations,") {
			t.Errorf("output = %q, want flag to override config", got)
		}
	})
}
