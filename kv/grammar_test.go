package kv

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/pcomb/parse"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyValue
		ok    bool
	}{
		{"simple", "targetHeight: 100", KeyValue{"targetHeight", 100}, true},
		{"space before colon", "id : 16", KeyValue{"id", 16}, true},
		{"no spaces", "a:1", KeyValue{"a", 1}, true},
		{"tabs", "k\t:\t7", KeyValue{"k", 7}, true},
		{"leading zeros", "n: 007", KeyValue{"n", 7}, true},
		{"unicode key", "größe: 3", KeyValue{"größe", 3}, true},
		{"unicode digits", "n: ٤٢", KeyValue{"n", 42}, true},
		{"fullwidth digits", "n: １０", KeyValue{"n", 10}, true},
		{"trailing input ignored", "x: 1 and more", KeyValue{"x", 1}, true},
		{"no value", "Hello Kotlin", KeyValue{}, false},
		{"no digits", "key: abc", KeyValue{}, false},
		{"digit key", "1: 2", KeyValue{}, false},
		{"missing colon", "key 2", KeyValue{}, false},
		{"leading space", " key: 2", KeyValue{}, false},
		{"empty", "", KeyValue{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.input)

			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}

			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLine_FailureRestoresCursor(t *testing.T) {
	c := parse.NewCursor("Hello Kotlin")

	if _, ok := Line.Parse(c); ok {
		t.Fatal("Line matched")
	}

	if c.Offset() != 0 {
		t.Errorf("failed Line consumed %d runes", c.Offset())
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		input string
		want  KeyValue
		rest  string
	}{
		{"a: 1\nb: 2", KeyValue{"a", 1}, "b: 2"},
		{"a: 1", KeyValue{"a", 1}, ""},
		{"a: 1\n\n", KeyValue{"a", 1}, "\n"},
		{"a: 1 ", KeyValue{"a", 1}, " "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := parse.Exec(Row, tt.input)

			if !r.Ok {
				t.Fatal("no match")
			}

			if r.Value != tt.want || r.Rest != tt.rest {
				t.Errorf("Row = %+v rest %q, want %+v rest %q",
					r.Value, r.Rest, tt.want, tt.rest)
			}
		})
	}
}

func TestConfig(t *testing.T) {
	input := "targetHeight: 100\nmaxTemperature: 80\nid : 16"

	r := parse.Exec(Config, input)
	if !r.Ok || r.Rest != "" {
		t.Fatalf("Config = %+v", r)
	}

	want := Document{
		{"targetHeight", 100},
		{"maxTemperature", 80},
		{"id", 16},
	}

	if diff := cmp.Diff(want, r.Value); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDigitsToInt(t *testing.T) {
	tests := []struct {
		digits []int
		want   int
	}{
		{nil, 0},
		{[]int{0}, 0},
		{[]int{1, 0, 0}, 100},
		{[]int{0, 4, 2}, 42},
	}

	for _, tt := range tests {
		if got := DigitsToInt(tt.digits); got != tt.want {
			t.Errorf("DigitsToInt(%v) = %d, want %d", tt.digits, got, tt.want)
		}
	}
}

func TestKeyValue_String(t *testing.T) {
	if got := (KeyValue{"id", 16}).String(); got != "id: 16" {
		t.Errorf("String() = %q", got)
	}
}
