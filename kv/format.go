package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes d in native syntax, one "key: value" entry per line.
// The output parses back to an equal document.
func (d Document) Format(_ context.Context, w io.Writer) error {
	for _, kv := range d {
		if _, err := fmt.Fprintln(w, kv.String()); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes d as a JSON object of effective values to the writer.
// Object keys are sorted.
func (d Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(d.ToMap(), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(d.ToMap())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes d as a YAML mapping of effective values to the writer,
// keeping the order of first appearance. A positive indent selects block
// style; otherwise the mapping is written in flow style.
func (d Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, d.mapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

func (d Document) mapSlice() yaml.MapSlice {
	items := make(yaml.MapSlice, 0, len(d))
	for key, value := range d.All() {
		items = append(items, yaml.MapItem{Key: key, Value: value})
	}

	return items
}
