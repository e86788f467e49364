package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

type resolverCLI struct {
	Indent     int `default:"2"`
	Iterations int `default:"1000"`
	TabSize    int `default:"8"    name:"tab-size"`
}

func parseWithConfig(t *testing.T, content string, args ...string) resolverCLI {
	t.Helper()

	path := filepath.Join(t.TempDir(), baseConfig)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var cli resolverCLI

	parser, err := kong.New(&cli,
		kong.Configuration(resolve(context.Background()), path),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}

	return cli
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		want    resolverCLI
	}{
		{
			name: "defaults",
			want: resolverCLI{Indent: 2, Iterations: 1000, TabSize: 8},
		},
		{
			name:    "config values",
			content: "indent: 4\niterations: 50\n",
			want:    resolverCLI{Indent: 4, Iterations: 50, TabSize: 8},
		},
		{
			name:    "hyphenated flag and last entry wins",
			content: "tabSize: 2\ntabSize: 3\n",
			want:    resolverCLI{Indent: 2, Iterations: 1000, TabSize: 3},
		},
		{
			name:    "flags override config",
			content: "indent: 4\n",
			args:    []string{"--indent=6"},
			want:    resolverCLI{Indent: 6, Iterations: 1000, TabSize: 8},
		},
		{
			name:    "unknown keys ignored",
			content: "colour: 3\n",
			want:    resolverCLI{Indent: 2, Iterations: 1000, TabSize: 8},
		},
		{
			name:    "invalid config ignored",
			content: "indent = 4\n",
			want:    resolverCLI{Indent: 2, Iterations: 1000, TabSize: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseWithConfig(t, tt.content, tt.args...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigResolve(t *testing.T) {
	cfg := config{"indent": 4}

	v, err := cfg.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "indent"}})
	if err != nil || v != "4" {
		t.Errorf("Resolve(indent) = %v, %v, want \"4\"", v, err)
	}

	v, err = cfg.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "depth"}})
	if err != nil || v != nil {
		t.Errorf("Resolve(depth) = %v, %v, want nil", v, err)
	}
}

func TestConfigKey(t *testing.T) {
	for in, want := range map[string]string{
		"tab-size":   "tabsize",
		"tabSize":    "tabsize",
		"Iterations": "iterations",
	} {
		if got := configKey(in); got != want {
			t.Errorf("configKey(%q) = %q, want %q", in, got, want)
		}
	}

	if strings.Contains(configKey("log-time-layout"), "-") {
		t.Error("configKey kept a hyphen")
	}
}
