package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZip(t *testing.T) {
	p := Zip(Letter(), Digit())

	t.Run("match", func(t *testing.T) {
		r := Exec(p, "a1!")

		if !r.Ok {
			t.Fatal("no match")
		}

		if diff := cmp.Diff(Pair[rune, int]{First: 'a', Second: 1}, r.Value); diff != "" {
			t.Errorf("value mismatch (-want +got):\n%s", diff)
		}

		if r.Rest != "!" {
			t.Errorf("Rest = %q, want %q", r.Rest, "!")
		}
	})

	t.Run("second fails", func(t *testing.T) {
		c := NewCursor("a!")

		if _, ok := p.Parse(c); ok {
			t.Fatal("matched")
		}

		// The letter consumed by the first parser must be restored.
		r, ok := Letter().Parse(c)
		if !ok || r != 'a' {
			t.Errorf("Letter after failed Zip = %q, %v; want 'a', true", r, ok)
		}
	})

	t.Run("first fails", func(t *testing.T) {
		r := Exec(p, "1a")

		if r.Ok || r.Rest != "1a" {
			t.Errorf("Exec = %+v, want no match and no consumption", r)
		}
	})
}

func TestZip3(t *testing.T) {
	p := Zip3(Letter(), Literal('='), Digit())

	r := Exec(p, "x=9;")
	if !r.Ok {
		t.Fatal("no match")
	}

	want := Triple[rune, rune, int]{First: 'x', Second: '=', Third: 9}
	if diff := cmp.Diff(want, r.Value); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}

	if r.Rest != ";" {
		t.Errorf("Rest = %q, want %q", r.Rest, ";")
	}

	if r := Exec(p, "x=y"); r.Ok || r.Rest != "x=y" {
		t.Errorf("Exec(%q) = %+v, want no match and no consumption", "x=y", r)
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name    string
		parsers []Parser[rune]
		input   string
		want    []rune
		ok      bool
		rest    string
	}{
		{
			name:    "all match",
			parsers: []Parser[rune]{Literal('i'), Literal('d'), Whitespace()},
			input:   "id x",
			want:    []rune{'i', 'd', ' '},
			ok:      true,
			rest:    "x",
		},
		{
			name:    "last fails",
			parsers: []Parser[rune]{Literal('i'), Literal('d'), Whitespace()},
			input:   "idx",
			want:    nil,
			ok:      false,
			rest:    "idx",
		},
		{
			name:    "empty",
			parsers: nil,
			input:   "abc",
			want:    []rune{},
			ok:      true,
			rest:    "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Exec(Sequence(tt.parsers...), tt.input)

			if r.Ok != tt.ok {
				t.Fatalf("Ok = %v, want %v", r.Ok, tt.ok)
			}

			if diff := cmp.Diff(tt.want, r.Value); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}

			if r.Rest != tt.rest {
				t.Errorf("Rest = %q, want %q", r.Rest, tt.rest)
			}
		})
	}
}

func TestBacktrack(t *testing.T) {
	// letterThenDigit consumes a letter and then fails without restoring.
	letterThenDigit := Func[int](func(c *Cursor) (int, bool) {
		if _, ok := Letter().Parse(c); !ok {
			return 0, false
		}

		return Digit().Parse(c)
	})

	if r := Exec(letterThenDigit, "ab"); r.Ok || r.Rest != "b" {
		t.Fatalf("unwrapped parser: %+v, want failure after consuming one rune", r)
	}

	if r := Exec(Backtrack(letterThenDigit), "ab"); r.Ok || r.Rest != "ab" {
		t.Errorf("Backtrack: %+v, want failure without consumption", r)
	}

	if r := Exec(Backtrack(letterThenDigit), "a5b"); !r.Ok || r.Value != 5 || r.Rest != "b" {
		t.Errorf("Backtrack on match: %+v", r)
	}
}

func TestLeftRight(t *testing.T) {
	left := Left(Digit(), Literal(';'))
	right := Right(Literal('#'), Digit())

	if r := Exec(left, "4;x"); !r.Ok || r.Value != 4 || r.Rest != "x" {
		t.Errorf("Left: %+v", r)
	}

	if r := Exec(left, "4x"); r.Ok || r.Rest != "4x" {
		t.Errorf("Left on mismatch: %+v", r)
	}

	if r := Exec(right, "#7x"); !r.Ok || r.Value != 7 || r.Rest != "x" {
		t.Errorf("Right: %+v", r)
	}

	if r := Exec(right, "#x"); r.Ok || r.Rest != "#x" {
		t.Errorf("Right on mismatch: %+v", r)
	}
}
