package parse

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/pcomb/log"
)

func TestTraced(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("none"),
	)

	p := Traced("digits", OneOrMore(Digit()), logger)

	if r := Exec(p, "12a"); !r.Ok || r.Rest != "a" {
		t.Fatalf("Exec = %+v", r)
	}

	if r := Exec(p, "\nx"); r.Ok {
		t.Fatalf("Exec matched %q", "\nx")
	}

	var got []map[string]any

	dec := json.NewDecoder(&buf)
	for dec.More() {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			t.Fatalf("decode: %v", err)
		}

		got = append(got, m)
	}

	want := []map[string]any{
		{"level": "TRACE", "msg": "match", "rule": "digits", "start": 0.0, "end": 2.0},
		{"level": "TRACE", "msg": "no match", "rule": "digits", "start": 0.0, "line": 1.0, "column": 1.0},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trace records mismatch (-want +got):\n%s", diff)
	}
}

func TestTraced_Disabled(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf, log.WithLevel(log.LevelDebug))
	p := Traced("digit", Digit(), logger)

	if r := Exec(p, "5"); !r.Ok || r.Value != 5 {
		t.Fatalf("Exec = %+v", r)
	}

	if buf.Len() != 0 {
		t.Errorf("wrote %q with trace disabled", buf.String())
	}

	var zero log.Logger
	if r := Exec(Traced("digit", Digit(), zero), "5"); !r.Ok {
		t.Error("zero Logger changed parser result")
	}
}
