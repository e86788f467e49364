package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// partial consumes a letter and then requires a digit without restoring the
// cursor when the digit is missing.
var partial = Func[int](func(c *Cursor) (int, bool) {
	if _, ok := Letter().Parse(c); !ok {
		return 0, false
	}

	return Digit().Parse(c)
})

func TestMap(t *testing.T) {
	double := Map(Digit(), func(n int) int { return n * 2 })

	if r := Exec(double, "4x"); !r.Ok || r.Value != 8 || r.Rest != "x" {
		t.Errorf("Exec(double, %q) = %+v", "4x", r)
	}

	called := false
	p := Map(Digit(), func(n int) int { called = true; return n })

	if r := Exec(p, "x"); r.Ok || r.Rest != "x" {
		t.Errorf("Exec(p, %q) = %+v, want no match", "x", r)
	}

	if called {
		t.Error("mapping function called on failure")
	}
}

func TestAlways(t *testing.T) {
	tests := []struct {
		name  string
		p     Parser[Unit]
		input string
		rest  string
	}{
		{"primitive match", Always(Literal('\n')), "\nb", "b"},
		{"primitive mismatch", Always(Literal('\n')), "b", "b"},
		{"empty input", Always(Literal('\n')), "", ""},
		{"atomic mismatch", Always(Zip(Letter(), Digit())), "ab", "ab"},
		// A non-atomic parser keeps whatever it consumed before failing.
		{"partial mismatch", Always(partial), "ab", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Exec(tt.p, tt.input)

			if !r.Ok {
				t.Fatal("Always failed")
			}

			if r.Rest != tt.rest {
				t.Errorf("Rest = %q, want %q", r.Rest, tt.rest)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Option[int]
		rest  string
	}{
		{"match", "a5b", Option[int]{Value: 5, Ok: true}, "b"},
		{"partial mismatch", "ab", Option[int]{}, "ab"},
		{"empty", "", Option[int]{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Exec(Optional(partial), tt.input)

			if !r.Ok {
				t.Fatal("Optional failed")
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

func TestDiscard(t *testing.T) {
	p := Discard(OneOrMore(Whitespace()))

	if r := Exec(p, " \t x"); !r.Ok || r.Rest != "x" {
		t.Errorf("Exec(p, %q) = %+v", " \t x", r)
	}

	if r := Exec(p, "x"); r.Ok {
		t.Errorf("Exec(p, %q) matched", "x")
	}
}
